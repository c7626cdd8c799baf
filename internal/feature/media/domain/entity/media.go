// Package entity defines the domain models for the media feature.
package entity

import "time"

// MediaObject is the metadata record for one stored file. The bytes
// themselves live in external object storage; Key is the storage key.
type MediaObject struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Key         string    `gorm:"size:64;not null;uniqueIndex"`
	FileName    string    `gorm:"size:255;not null"`
	ContentType string    `gorm:"size:100;not null"`
	SizeBytes   int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
