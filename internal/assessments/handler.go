package assessments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/fingerprint"
	"readiness-backend/internal/recommendations"
	"readiness-backend/internal/shared/metrics"
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

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.submit)
	rg.GET("/assessments", h.list)
	rg.GET("/assessments/:id", h.get)
	rg.GET("/assessments/:id/recommendations", h.recommendations)
}

type submitRequest struct {
	Tier      string            `json:"tier"`
	Responses map[string]string `json:"responses"`
	Device    fingerprint.Probe `json:"device"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	input := SubmitInput{
		Tier:      req.Tier,
		Responses: req.Responses,
		Anonymous: middleware.IsGuest(c),
		Probe:     req.Device,
	}
	if !input.Anonymous {
		input.UserID = middleware.UserIDFromContext(c)
		input.CompanyID = middleware.CompanyIDFromContext(c)
	}

	assessment, err := h.Svc.Submit(c.Request.Context(), input)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	c.Set("assessmentId", assessment.ID)
	respond.JSON(c, http.StatusCreated, assessment)
}

func (h *Handler) get(c *gin.Context) {
	assessment, ok := h.fetchVisible(c)
	if !ok {
		return
	}
	respond.OK(c, assessment)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	assessments, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list assessments", nil)
		return
	}
	if assessments == nil {
		assessments = []Assessment{}
	}
	respond.OK(c, gin.H{"assessments": assessments})
}

type recommendationView struct {
	recommendations.Recommendation
	PillarName    string `json:"pillarName,omitempty"`
	PillarColor   string `json:"pillarColor,omitempty"`
	MaturityColor string `json:"maturityColor,omitempty"`
}

func (h *Handler) recommendations(c *gin.Context) {
	assessment, ok := h.fetchVisible(c)
	if !ok {
		return
	}

	metrics.IncRecommendationsServed()
	recs := recommendations.Generate(assessment.Result)
	views := make([]recommendationView, 0, len(recs))
	for _, rec := range recs {
		view := recommendationView{Recommendation: rec}
		if rec.Pillar != "" {
			view.PillarName = recommendations.PillarDisplayName(rec.Pillar)
			view.PillarColor = recommendations.PillarColor(rec.Pillar)
		}
		if rec.MaturityLevel != "" {
			view.MaturityColor = recommendations.MaturityColor(rec.MaturityLevel)
		}
		views = append(views, view)
	}
	respond.OK(c, gin.H{"recommendations": views})
}

// fetchVisible loads the assessment and enforces visibility: owners see
// their own, admins see everything, and unowned (still anonymous) records
// stay reachable by id so a visitor can revisit their result.
func (h *Handler) fetchVisible(c *gin.Context) (Assessment, bool) {
	assessment, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to load assessment", nil)
		}
		return Assessment{}, false
	}

	callerID := middleware.UserIDFromContext(c)
	isAdmin := middleware.RoleFromContext(c) == middleware.RoleAdmin
	if assessment.UserID != "" && assessment.UserID != callerID && !isAdmin {
		respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		return Assessment{}, false
	}

	c.Set("assessmentId", assessment.ID)
	return assessment, true
}
