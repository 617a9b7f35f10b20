package scores

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ats-score-backend/internal/shared/server/middleware"
	"ats-score-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/score", h.score)
	rg.GET("/ats/scores", h.list)
	rg.GET("/ats/scores/:scoreId", h.get)
}

func (h *Handler) score(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Resume) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume is required", nil)
		return
	}

	record, err := h.Svc.Score(c.Request.Context(), ScoreInput{
		UserID:         userID,
		DocumentID:     req.DocumentID,
		Resume:         req.Resume,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score resume", nil)
		}
		return
	}

	c.Set("scoreId", record.ID)
	respond.JSON(c, http.StatusCreated, toResponse(record))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	scoreID := c.Param("scoreId")

	record, err := h.Svc.Get(c.Request.Context(), userID, scoreID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "score not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch score", nil)
		}
		return
	}

	c.Set("scoreId", record.ID)
	respond.JSON(c, http.StatusOK, toResponse(record))
}

func (h *Handler) list(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	records, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list scores", nil)
		}
		return
	}

	resp := make([]ScoreSummary, 0, len(records))
	for _, record := range records {
		resp = append(resp, toSummary(record))
	}
	respond.JSON(c, http.StatusOK, resp)
}
