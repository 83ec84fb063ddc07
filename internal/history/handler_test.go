package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, repo Repo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(repo)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func seedRepo(t *testing.T, repo Repo) {
	t.Helper()
	now := time.Now().UTC()
	records := []Record{
		{ID: "gen-1", JD: "first jd", Profile: json.RawMessage(`{"fullName":"Jane"}`), HTML: "<article>one</article>", CreatedAt: now.Add(-time.Hour)},
		{ID: "gen-2", JD: "second jd", Profile: json.RawMessage(`{}`), HTML: "<article>two</article>", CreatedAt: now},
	}
	for _, record := range records {
		if err := repo.Upsert(context.Background(), record); err != nil {
			t.Fatalf("seed Upsert: %v", err)
		}
	}
}

func TestListGenerationsNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	seedRepo(t, repo)
	r := newTestRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/generations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		OK    bool `json:"ok"`
		Items []struct {
			ID string `json:"id"`
			JD string `json:"jd"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || len(body.Items) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if body.Items[0].ID != "gen-2" {
		t.Fatalf("items not newest-first: %+v", body.Items)
	}
}

func TestGetGeneration(t *testing.T) {
	repo := NewMemoryRepo()
	seedRepo(t, repo)
	r := newTestRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/generations/gen-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		OK         bool `json:"ok"`
		Generation struct {
			ID   string `json:"id"`
			HTML string `json:"html"`
		} `json:"generation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Generation.ID != "gen-1" || body.Generation.HTML != "<article>one</article>" {
		t.Fatalf("body = %+v", body)
	}
}

func TestGetGenerationNotFound(t *testing.T) {
	r := newTestRouter(t, NewMemoryRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/generations/absent", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != false {
		t.Fatalf("ok = %v", body["ok"])
	}
}

func TestMemoryRepoUpsertIsIdempotentByID(t *testing.T) {
	repo := NewMemoryRepo()
	first := Record{ID: "gen-1", JD: "jd", HTML: "<a/>", CreatedAt: time.Now().UTC()}
	if err := repo.Upsert(context.Background(), first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	replaced := first
	replaced.HTML = "<b/>"
	if err := repo.Upsert(context.Background(), replaced); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}

	records, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 1 || records[0].HTML != "<b/>" {
		t.Fatalf("records = %+v", records)
	}
}
