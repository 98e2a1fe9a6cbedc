package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/fingerprint"
	"readiness-backend/internal/shared/server/middleware"
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

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/identify", h.identify)
	rg.GET("/me", h.me)
}

type identifyRequest struct {
	Email    string            `json:"email"`
	FullName string            `json:"fullName"`
	Device   fingerprint.Probe `json:"device"`
}

// identify is called once per successful identification event (signup or
// login). The verified user id arrives from the identity provider via the
// trusted header; the body carries profile details and the device probe used
// to find anonymous submissions.
func (h *Handler) identify(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "identification requires a verified identity", nil)
		return
	}

	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		return
	}

	user := User{
		ID:        middleware.UserIDFromContext(c),
		Email:     strings.TrimSpace(req.Email),
		FullName:  strings.TrimSpace(req.FullName),
		CompanyID: middleware.CompanyIDFromContext(c),
		Role:      middleware.RoleFromContext(c),
	}

	stored, linked, err := h.Svc.Identify(c.Request.Context(), user, req.Device)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to identify user", nil)
		return
	}

	respond.OK(c, gin.H{
		"user":              stored,
		"linkedAssessments": linked,
	})
}

func (h *Handler) me(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "no identified user", nil)
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load user", nil)
		return
	}
	respond.OK(c, user)
}
