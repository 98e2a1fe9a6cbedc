package dimensions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/shared/server/respond"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches the read-only dimension routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dimensions", h.list)
	rg.GET("/dimensions/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"dimensions": h.Catalog.List()})
}

func (h *Handler) get(c *gin.Context) {
	dimension, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "dimension not found", nil)
		return
	}
	respond.OK(c, dimension)
}
