// Package dto defines data transfer objects for the projects HTTP API.
package dto

import (
	"time"

	"account_backend/internal/feature/projects/domain/entity"
)

// ProjectReq represents the request body for creating or updating a project.
type ProjectReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// ProjectRes represents a project in the API response.
type ProjectRes struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectResFromEntity converts a project entity to its response form.
func ProjectResFromEntity(p *entity.Project) ProjectRes {
	return ProjectRes{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
