package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvgen-backend/internal/assemble"
	"cvgen-backend/internal/history"
	"cvgen-backend/internal/quota"
	"cvgen-backend/internal/sections"
	"cvgen-backend/internal/seedrand"
	"cvgen-backend/internal/shared/server/respond"
	"cvgen-backend/internal/shared/telemetry"
)

const (
	minJobDescriptionLen = 5
	fallbackQuotaKey     = "anonymous"
)

// Handler drives one generation request end to end: quota ticket, AI
// generation, assembly, best-effort persistence.
type Handler struct {
	Svc        *Service
	Ledger     *quota.Ledger
	History    *history.Service
	DailyLimit int
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, ledger *quota.Ledger, historySvc *history.Service, dailyLimit int) *Handler {
	return &Handler{
		Svc:        svc,
		Ledger:     ledger,
		History:    historySvc,
		DailyLimit: dailyLimit,
	}
}

// RegisterRoutes attaches the generation route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type generateBody struct {
	Profile  map[string]any `json:"profile"`
	JD       string         `json:"jd"`
	Scope    []string       `json:"scope"`
	UserID   string         `json:"userId"`
	Nickname string         `json:"nickname"`
}

func (h *Handler) generate(c *gin.Context) {
	var body generateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if len(strings.TrimSpace(body.JD)) < minJobDescriptionLen {
		respond.Error(c, http.StatusBadRequest, "jd is required and must be at least 5 characters")
		return
	}
	if body.Profile == nil {
		body.Profile = map[string]any{}
	}

	key := deriveQuotaKey(body, c.ClientIP())
	ticket := h.Ledger.Consume(key, h.DailyLimit)
	if !ticket.Granted {
		respond.ErrorWithDebug(c, http.StatusTooManyRequests,
			"daily generation limit reached",
			gin.H{"daily": ticket})
		return
	}

	seed := seedrand.MakeSeed()

	output, err := h.Svc.Generate(c.Request.Context(), body.Profile, body.JD)
	if err != nil {
		h.Ledger.Refund(key)
		var sectionErr *SectionError
		switch {
		case errors.As(err, &sectionErr):
			respond.Error(c, http.StatusServiceUnavailable,
				fmt.Sprintf("generation failed: section %s did not validate", sectionErr.Section))
		default:
			respond.Error(c, http.StatusServiceUnavailable,
				"generation failed: upstream ai call")
		}
		return
	}

	scope := parseScope(body.Scope)
	html := assemble.Document(body.Profile, output.Content, scope, seed)

	requestID := uuid.NewString()
	h.persist(c, requestID, body, html)

	respond.JSON(c, http.StatusOK, gin.H{
		"ok":        true,
		"generated": gin.H{"html": html},
		"debug":     gin.H{"requestId": requestID},
	})
}

// persist stores the outcome. Failure here must never fail the request; the
// outcome is logged either way.
func (h *Handler) persist(c *gin.Context, requestID string, body generateBody, html string) {
	if h.History == nil {
		return
	}
	profileJSON, err := json.Marshal(body.Profile)
	if err != nil {
		profileJSON = []byte("{}")
	}
	record := history.Record{
		ID:        requestID,
		JD:        body.JD,
		Profile:   profileJSON,
		HTML:      html,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.History.Save(c.Request.Context(), record); err != nil {
		telemetry.Warn("history.save_failed", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return
	}
	telemetry.Info("history.saved", map[string]any{"request_id": requestID})
}

// parseScope maps caller names onto section ids, skipping unknown entries.
// An empty scope means the full document.
func parseScope(raw []string) []sections.ID {
	var scope []sections.ID
	for _, name := range raw {
		if id, ok := sections.Parse(name); ok {
			scope = append(scope, id)
		}
	}
	if len(scope) == 0 {
		return sections.All()
	}
	return scope
}

// deriveQuotaKey picks the rate-limit key: explicit user id, then profile
// email, then nickname, then the connection origin, then a fixed constant.
func deriveQuotaKey(body generateBody, clientIP string) string {
	if key := strings.TrimSpace(body.UserID); key != "" {
		return key
	}
	if key := profileField(body.Profile, "email"); key != "" {
		return key
	}
	if key := strings.TrimSpace(body.Nickname); key != "" {
		return key
	}
	if key := profileField(body.Profile, "nickname"); key != "" {
		return key
	}
	if key := strings.TrimSpace(clientIP); key != "" {
		return key
	}
	return fallbackQuotaKey
}

func profileField(profile map[string]any, key string) string {
	if raw, ok := profile[key]; ok {
		if s, ok := raw.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
