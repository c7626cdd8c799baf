// Package adapters provides repository implementations for the projects feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/projects/domain/entity"
	"account_backend/internal/feature/projects/usecase"
)

// projectPostgres is a GORM implementation of the ProjectRepository interface.
type projectPostgres struct {
	db *gorm.DB
}

var _ usecase.ProjectRepository = (*projectPostgres)(nil)

// NewProjectRepository creates a new instance of projectPostgres with the
// given DB connection.
func NewProjectRepository(db *gorm.DB) *projectPostgres {
	return &projectPostgres{db: db}
}

// Create inserts a new project row.
func (r *projectPostgres) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// ListByOwner returns the user's projects, newest first.
func (r *projectPostgres) ListByOwner(ctx context.Context, userID uint) ([]entity.Project, error) {
	var projects []entity.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID retrieves one project, scoped to the owner.
func (r *projectPostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Project, error) {
	var project entity.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Update saves all fields of the project row.
func (r *projectPostgres) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes one project, scoped to the owner.
func (r *projectPostgres) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}
