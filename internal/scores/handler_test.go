package scores_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-score-backend/internal/shared/config"
	"ats-score-backend/internal/shared/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
	}
	return server.NewRouter(cfg)
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func postScore(t *testing.T, router *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/score", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestScoreAndFetchByID(t *testing.T) {
	router := newTestRouter(t)

	resp := postScore(t, router, map[string]any{
		"resume": map[string]any{
			"fullName": "Jane Doe",
			"email":    "jane.doe@example.com",
			"phone":    "+1 415 555 0100",
			"skills":   []string{"Go", "PostgreSQL", "Docker"},
		},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ScoreID string `json:"scoreId"`
		Report  struct {
			Score    int    `json:"score"`
			Category string `json:"category"`
		} `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ScoreID == "" {
		t.Fatalf("expected scoreId, got empty")
	}
	if created.Report.Category == "" {
		t.Fatalf("expected category, got empty")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/ats/scores/"+created.ScoreID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respGet.Code, respGet.Body.String())
	}

	var fetched struct {
		ScoreID string `json:"scoreId"`
		Report  struct {
			Score int `json:"score"`
		} `json:"report"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ScoreID != created.ScoreID {
		t.Fatalf("expected scoreId %s, got %s", created.ScoreID, fetched.ScoreID)
	}
	if fetched.Report.Score != created.Report.Score {
		t.Fatalf("expected stored score %d, got %d", created.Report.Score, fetched.Report.Score)
	}
}

func TestScoreRejectsMissingResume(t *testing.T) {
	router := newTestRouter(t)

	resp := postScore(t, router, map[string]any{
		"jobDescription": "Go engineer needed",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", body.Error.Code)
	}
}

func TestScoreRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/score", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestScoreHistoryRequiresLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ats/scores", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest history, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "login_required" {
		t.Fatalf("expected login_required, got %s", body.Error.Code)
	}
}

func TestScoreUnknownIDReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ats/scores/does-not-exist", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
