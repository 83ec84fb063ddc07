package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvgen-backend/internal/shared/server/respond"
)

// Handler exposes read endpoints over stored generations.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/generations", h.listGenerations)
	rg.GET("/generations/:id", h.getGeneration)
}

func (h *Handler) listGenerations(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	records, err := h.Svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list generations")
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, gin.H{
			"id":        record.ID,
			"jd":        snippet(record.JD, 120),
			"createdAt": record.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true, "items": items})
}

func (h *Handler) getGeneration(c *gin.Context) {
	id := c.Param("id")
	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "generation not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to fetch generation")
		}
		return
	}

	profile := record.Profile
	if len(profile) == 0 {
		profile = json.RawMessage("{}")
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"ok": true,
		"generation": gin.H{
			"id":        record.ID,
			"jd":        record.JD,
			"profile":   profile,
			"html":      record.HTML,
			"createdAt": record.CreatedAt,
		},
	})
}

func snippet(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
