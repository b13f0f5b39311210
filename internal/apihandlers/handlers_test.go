package apihandlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bubble/internal/inputprocessor"
	"bubble/internal/keywords"
	"bubble/internal/models"
	"bubble/internal/services"
	"bubble/internal/store"
	"bubble/internal/tasks"
	"bubble/internal/taxonomy"
	mock_store "bubble/internal/tests/mocks/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleArticle = "Green bonds fund forest restoration. Green bonds attract climate finance."

func init() {
	gin.SetMode(gin.TestMode)
}

type testDeps struct {
	artifacts *mock_store.ArtifactStore
	costs     *mock_store.CostTrackingStore
	jobs      *mock_store.JobClient
}

func newTestRouter(t *testing.T, deps testDeps) *gin.Engine {
	t.Helper()
	tax := taxonomy.New([]taxonomy.Record{
		{Slug: "science", Label: "Science", Group: "science"},
		{Slug: "climate-finance", Label: "Climate Finance", Group: "business", Parents: []string{"science"}, Professional: true},
		{Slug: "culture", Label: "Culture", Group: "culture"},
	})
	extractor, err := keywords.NewExtractor(keywords.DefaultMaxKeywords, keywords.DefaultMaxNgram)
	require.NoError(t, err)

	var artifacts store.ArtifactStore
	if deps.artifacts != nil {
		artifacts = deps.artifacts
	}
	var costs store.CostTrackingStore
	if deps.costs != nil {
		costs = deps.costs
	}
	h := &APIHandler{
		Taxonomy:   tax,
		Randomizer: taxonomy.NewSeededRandomizer(tax, 7),
		Suggestions: services.NewSuggestionService(
			services.NewStudyComposer(tax, extractor, nil),
			services.NewBriefComposer(tax, extractor, nil),
			artifacts,
		),
		Costs:    services.NewCostService(costs),
		Keywords: extractor,
		Input:    inputprocessor.New(),
	}
	if deps.jobs != nil {
		h.Jobs = deps.jobs
	}
	return NewRouter(h)
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	return w, decoded
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope: %v", body)
	return envelope["code"].(string)
}

func TestHealth(t *testing.T) {
	w, body := do(t, newTestRouter(t, testDeps{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGroups(t *testing.T) {
	w, body := do(t, newTestRouter(t, testDeps{}), http.MethodGet, "/api/v1/groups", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"business", "culture", "science"}, body["groups"])
}

func TestCategories(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	w, body := do(t, r, http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["categories"], 3)

	w, body = do(t, r, http.MethodGet, "/api/v1/categories?professional=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cats := body["categories"].([]any)
	require.Len(t, cats, 1)
	assert.Equal(t, "climate-finance", cats[0].(map[string]any)["slug"])

	w, body = do(t, r, http.MethodGet, "/api/v1/categories?group=nowhere", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["categories"])

	w, body = do(t, r, http.MethodGet, "/api/v1/categories?professional=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, body))
}

func TestGetCategory(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	w, body := do(t, r, http.MethodGet, "/api/v1/categories/climate-finance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Climate Finance", body["category"].(map[string]any)["label"])
	assert.Equal(t, []any{"Science"}, body["path"])

	w, body = do(t, r, http.MethodGet, "/api/v1/categories/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, body))
}

func TestRandomSubject(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	w, body := do(t, r, http.MethodGet, "/api/v1/random/subject?professional=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "climate-finance", body["subject"].(map[string]any)["slug"])

	w, body = do(t, r, http.MethodGet, "/api/v1/random/subject?group=culture&professional=true", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, body))
}

func TestStudy(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	w, body := do(t, r, http.MethodPost, "/api/v1/study/suggest", map[string]any{
		"topic": "carbon markets", "category": "climate-finance", "text": sampleArticle, "mode": "quen-3.4b-thinking",
	})
	require.Equal(t, http.StatusOK, w.Code)
	s := body["suggestion"].(map[string]any)
	assert.Equal(t, "Climate Finance", s["category"])
	assert.Equal(t, "Climate Finance · Green bonds", s["spotlight_subject"])
	assert.Equal(t, models.MethodHeuristicThinking, s["method"])

	w, body = do(t, r, http.MethodPost, "/api/v1/study/suggest", map[string]any{"topic": "carbon markets"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, body))

	w, body = do(t, r, http.MethodPost, "/api/v1/study/suggest", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, body))
}

func TestStudy_HTMLWithoutTextCountsAsNoArticle(t *testing.T) {
	w, body := do(t, newTestRouter(t, testDeps{}), http.MethodPost, "/api/v1/study/suggest", map[string]any{
		"topic": "carbon markets", "category": "unknown", "text": "<html><body><script>x()</script></body></html>",
	})
	require.Equal(t, http.StatusOK, w.Code)
	s := body["suggestion"].(map[string]any)
	assert.Equal(t, "carbon markets", s["spotlight_subject"])
	assert.Len(t, s["questions"], 1)
}

func TestBrief(t *testing.T) {
	w, body := do(t, newTestRouter(t, testDeps{}), http.MethodPost, "/api/v1/professional/brief", map[string]any{
		"topic": "sustainable investing", "category": "climate-finance", "text": sampleArticle, "persona": "designer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	b := body["brief"].(map[string]any)
	assert.Equal(t, "heuristic-designer", b["method"])
	palette := b["palette_ideas"].([]any)
	assert.LessOrEqual(t, len(palette), 3)
	assert.Equal(t, "Verdant pine, misty teal, and copper sparks for regenerative energy", palette[0])
}

func TestAsync(t *testing.T) {
	t.Run("without job client", func(t *testing.T) {
		w, body := do(t, newTestRouter(t, testDeps{}), http.MethodPost, "/api/v1/study/suggest", map[string]any{
			"topic": "t", "category": "science", "async": true,
		})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "not_configured", errorCode(t, body))
	})

	t.Run("enqueues brief", func(t *testing.T) {
		jobs := new(mock_store.JobClient)
		jobs.On("EnqueueBrief", mock.Anything, tasks.BriefPayload{
			Topic: "t", Category: "science", Persona: "investor",
		}).Return(&asynq.TaskInfo{ID: "task-1", Queue: tasks.QueueCompose}, nil).Once()

		w, body := do(t, newTestRouter(t, testDeps{jobs: jobs}), http.MethodPost, "/api/v1/professional/brief", map[string]any{
			"topic": "t", "category": "science", "persona": "investor", "async": true,
		})
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "task-1", body["task_id"])
		assert.Equal(t, tasks.QueueCompose, body["queue"])
		jobs.AssertExpectations(t)
	})
}

func TestKeywords(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	w, body := do(t, r, http.MethodPost, "/api/v1/keywords", map[string]any{"text": sampleArticle, "limit": 2})
	require.Equal(t, http.StatusOK, w.Code)
	kws := body["keywords"].([]any)
	require.Len(t, kws, 2)
	assert.Equal(t, "Green bonds", kws[0])

	w, body = do(t, r, http.MethodPost, "/api/v1/keywords", map[string]any{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, body))
}

func TestHistory(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		w, body := do(t, newTestRouter(t, testDeps{}), http.MethodGet, "/api/v1/history", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "not_configured", errorCode(t, body))
	})

	t.Run("lists", func(t *testing.T) {
		artifacts := new(mock_store.ArtifactStore)
		artifacts.On("ListArtifacts", mock.Anything, models.KindStudy, 5, 0).
			Return([]*models.Artifact{{ID: uuid.New(), Kind: models.KindStudy, Payload: json.RawMessage(`{}`)}}, nil).Once()

		w, body := do(t, newTestRouter(t, testDeps{artifacts: artifacts}), http.MethodGet, "/api/v1/history?kind=study&limit=5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, body["artifacts"], 1)
		artifacts.AssertExpectations(t)
	})

	t.Run("bad query", func(t *testing.T) {
		artifacts := new(mock_store.ArtifactStore)
		r := newTestRouter(t, testDeps{artifacts: artifacts})

		w, _ := do(t, r, http.MethodGet, "/api/v1/history?limit=zero", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = do(t, r, http.MethodGet, "/api/v1/history?kind=poem", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get artifact", func(t *testing.T) {
		id := uuid.New()
		artifacts := new(mock_store.ArtifactStore)
		artifacts.On("GetArtifact", mock.Anything, id).Return(nil, store.ErrNotFound).Once()
		r := newTestRouter(t, testDeps{artifacts: artifacts})

		w, body := do(t, r, http.MethodGet, "/api/v1/history/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", errorCode(t, body))

		w, _ = do(t, r, http.MethodGet, "/api/v1/history/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCost(t *testing.T) {
	w, body := do(t, newTestRouter(t, testDeps{}), http.MethodGet, "/api/v1/cost/summary", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "not_configured", errorCode(t, body))

	costs := new(mock_store.CostTrackingStore)
	costs.On("GetUsageSummary", mock.Anything).Return(0.5, int64(20), int64(10), nil).Once()
	w, body = do(t, newTestRouter(t, testDeps{costs: costs}), http.MethodGet, "/api/v1/cost/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.5, body["total_cost"])
	assert.Equal(t, float64(20), body["total_input_tokens"])
}
