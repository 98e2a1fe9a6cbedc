package callrequests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the unauthenticated submission route.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/call-requests", h.create)
}

// RegisterAdminRoutes attaches the management routes. The caller is expected
// to guard the group with the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/call-requests", h.list)
	rg.PATCH("/call-requests/:id", h.updateStatus)
}

type createRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
	AssessmentID  string `json:"assessmentId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	request, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
		AssessmentID:  req.AssessmentID,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "name and a valid email are required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to create call request", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, request)
}

func (h *Handler) list(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requests, err := h.Svc.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status filter", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list call requests", nil)
		return
	}
	if requests == nil {
		requests = []CallRequest{}
	}
	respond.OK(c, gin.H{"callRequests": requests})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	request, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		var badTransition ErrBadTransition
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status", nil)
		case errors.As(err, &badTransition):
			respond.Error(c, http.StatusConflict, "invalid_transition", badTransition.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "call request not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to update call request", nil)
		}
		return
	}
	respond.OK(c, request)
}
