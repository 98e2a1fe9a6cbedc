package companies

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

// RegisterRoutes attaches company routes to the router group. The caller is
// expected to guard the group with the admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies", h.list)
	rg.POST("/companies", h.create)
	rg.GET("/companies/:id", h.get)
	rg.PUT("/companies/:id", h.update)
	rg.DELETE("/companies/:id", h.remove)
}

type companyRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	SizeBand string `json:"sizeBand"`
}

func (h *Handler) create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	company, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Name:     req.Name,
		Industry: req.Industry,
		SizeBand: req.SizeBand,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to create company", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, company)
}

func (h *Handler) update(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	company, err := h.Svc.Update(c.Request.Context(), c.Param("id"), CreateInput{
		Name:     req.Name,
		Industry: req.Industry,
		SizeBand: req.SizeBand,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to update company", nil)
		}
		return
	}
	respond.OK(c, company)
}

func (h *Handler) get(c *gin.Context) {
	company, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load company", nil)
		return
	}
	respond.OK(c, company)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	companies, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list companies", nil)
		return
	}
	if companies == nil {
		companies = []Company{}
	}
	respond.OK(c, gin.H{"companies": companies})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to delete company", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
