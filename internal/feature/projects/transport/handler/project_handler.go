package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/projects/domain/entity"
	"account_backend/internal/feature/projects/transport/http/dto"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/shared/apperr"
	"account_backend/internal/shared/response"
)

// ProjectUsecase defines the project operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProjectUsecase interface {
	Create(ctx context.Context, userID uint, name, description string) (*entity.Project, error)
	List(ctx context.Context, userID uint) ([]entity.Project, error)
	Get(ctx context.Context, userID, id uint) (*entity.Project, error)
	Update(ctx context.Context, userID, id uint, name, description string) (*entity.Project, error)
	Delete(ctx context.Context, userID, id uint) error
}

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	uc ProjectUsecase
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(uc ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	project, err := h.uc.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, dto.ProjectResFromEntity(project))
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	projects, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	out := make([]dto.ProjectRes, 0, len(projects))
	for i := range projects {
		out = append(out, dto.ProjectResFromEntity(&projects[i]))
	}
	response.OK(c, http.StatusOK, out)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.uc.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, dto.ProjectResFromEntity(project))
}

// Update handles PUT /projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	project, err := h.uc.Update(c.Request.Context(), userID, id, req.Name, req.Description)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, dto.ProjectResFromEntity(project))
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}
