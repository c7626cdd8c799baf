package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/notifications/domain/entity"
	"account_backend/internal/feature/notifications/transport/http/dto"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/shared/apperr"
	"account_backend/internal/shared/response"
)

// NotificationUsecase defines the notification operations consumed by the
// HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type NotificationUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID, id uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

// NotificationHandler handles HTTP requests for notification operations.
type NotificationHandler struct {
	uc NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(uc NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	notifications, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	out := make([]dto.NotificationRes, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.NotificationResFromEntity(&notifications[i]))
	}
	response.OK(c, http.StatusOK, out)
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
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
	if err := h.uc.MarkRead(c.Request.Context(), userID, uint(id)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	if err := h.uc.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}
