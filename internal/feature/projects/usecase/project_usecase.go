// Package usecase implements the business logic for project operations.
package usecase

import (
	"context"

	"account_backend/internal/feature/projects/domain/entity"
	"account_backend/internal/shared/apperr"
)

// ErrProjectNotFound is returned when no project matches the requested ID for
// the requesting owner.
var ErrProjectNotFound = apperr.New(apperr.ResourceNotFound)

// ProjectRepository abstracts the persistence layer for project data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	ListByOwner(ctx context.Context, userID uint) ([]entity.Project, error)
	FindByID(ctx context.Context, userID, id uint) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, userID, id uint) error
}

// ProjectUsecase provides business logic for project operations. Every
// operation is scoped to the owning user; one user can never see or touch
// another user's projects.
type ProjectUsecase struct {
	repo ProjectRepository
}

// NewProjectUsecase creates a new ProjectUsecase with the given repository.
func NewProjectUsecase(r ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: r}
}

// Create stores a new project for the given owner.
func (u *ProjectUsecase) Create(ctx context.Context, userID uint, name, description string) (*entity.Project, error) {
	project := &entity.Project{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns all projects owned by the given user.
func (u *ProjectUsecase) List(ctx context.Context, userID uint) ([]entity.Project, error) {
	return u.repo.ListByOwner(ctx, userID)
}

// Get returns a single project owned by the given user.
func (u *ProjectUsecase) Get(ctx context.Context, userID, id uint) (*entity.Project, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Update rewrites the name and description of an owned project.
func (u *ProjectUsecase) Update(ctx context.Context, userID, id uint, name, description string) (*entity.Project, error) {
	project, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	project.Name = name
	project.Description = description
	if err := u.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes an owned project.
func (u *ProjectUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
