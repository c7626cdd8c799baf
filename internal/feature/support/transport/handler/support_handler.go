package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/support/domain/entity"
	"account_backend/internal/feature/support/transport/http/dto"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/shared/apperr"
	"account_backend/internal/shared/response"
)

// SupportUsecase defines the ticket operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SupportUsecase interface {
	Create(ctx context.Context, userID uint, subject, body string) (*entity.Ticket, error)
	List(ctx context.Context, userID uint) ([]entity.Ticket, error)
	Get(ctx context.Context, userID, id uint) (*entity.Ticket, error)
}

// SupportHandler handles HTTP requests for support ticket operations.
type SupportHandler struct {
	uc SupportUsecase
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(uc SupportUsecase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// Create handles POST /support.
func (h *SupportHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	var req dto.CreateTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.InvalidInput))
		return
	}
	ticket, err := h.uc.Create(c.Request.Context(), userID, req.Subject, req.Body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, dto.TicketResFromEntity(ticket))
}

// List handles GET /support.
func (h *SupportHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, apperr.New(apperr.InvalidToken))
		return
	}
	tickets, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	out := make([]dto.TicketRes, 0, len(tickets))
	for i := range tickets {
		out = append(out, dto.TicketResFromEntity(&tickets[i]))
	}
	response.OK(c, http.StatusOK, out)
}

// Get handles GET /support/:id.
func (h *SupportHandler) Get(c *gin.Context) {
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
	ticket, err := h.uc.Get(c.Request.Context(), userID, uint(id))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, dto.TicketResFromEntity(ticket))
}
