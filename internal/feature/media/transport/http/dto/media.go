// Package dto defines data transfer objects for the media HTTP API.
package dto

import (
	"time"

	"account_backend/internal/feature/media/domain/entity"
)

// RegisterMediaReq represents the request body for registering an upload.
type RegisterMediaReq struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" binding:"min=0"`
}

// MediaRes represents a media record in the API response. URL fields are
// populated only on the endpoints that issue them.
type MediaRes struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	UploadURL   string    `json:"upload_url,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
}

// MediaResFromEntity converts a media entity to its response form.
func MediaResFromEntity(m *entity.MediaObject) MediaRes {
	return MediaRes{
		ID:          m.ID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		CreatedAt:   m.CreatedAt,
	}
}
