package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/media/domain/entity"
	"account_backend/internal/feature/media/transport/http/dto"
	"account_backend/internal/feature/media/usecase"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/shared/apperr"
	"account_backend/internal/shared/response"
)

// MediaUsecase defines the media operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MediaUsecase interface {
	Register(ctx context.Context, userID uint, fileName, contentType string, sizeBytes int64) (*usecase.Upload, error)
	List(ctx context.Context, userID uint) ([]entity.MediaObject, error)
	Get(ctx context.Context, userID, id uint) (*entity.MediaObject, string, error)
	Delete(ctx context.Context, userID, id uint) error
}

// MediaHandler handles HTTP requests for media operations.
type MediaHandler struct {
	uc MediaUsecase
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(uc MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Register handles POST /media.
func (h *MediaHandler) Register(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	var req dto.RegisterMediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	upload, err := h.uc.Register(c.Request.Context(), userID, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		response.Fail(c, err)
		return
	}
	res := dto.MediaResFromEntity(upload.Media)
	res.UploadURL = upload.UploadURL
	response.OK(c, http.StatusCreated, res)
}

// List handles GET /media.
func (h *MediaHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	records, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	out := make([]dto.MediaRes, 0, len(records))
	for i := range records {
		out = append(out, dto.MediaResFromEntity(&records[i]))
	}
	response.OK(c, http.StatusOK, out)
}

// Get handles GET /media/:id.
func (h *MediaHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	media, url, err := h.uc.Get(c.Request.Context(), userID, uint(id))
	if err != nil {
		response.Fail(c, err)
		return
	}
	res := dto.MediaResFromEntity(media)
	res.DownloadURL = url
	response.OK(c, http.StatusOK, res)
}

// Delete handles DELETE /media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}
