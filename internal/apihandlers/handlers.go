package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bubble/internal/clix"
	"bubble/internal/inputprocessor"
	"bubble/internal/keywords"
	"bubble/internal/models"
	"bubble/internal/services"
	"bubble/internal/store"
	"bubble/internal/tasks"
	"bubble/internal/taxonomy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeywordExtractor is a keywords.Source that can also honor a caller's limit.
type KeywordExtractor interface {
	keywords.Source
	ExtractN(text string, limit int) []string
}

// APIHandler serves the /api/v1 routes. Costs, Jobs and the history store
// behind Suggestions are optional.
type APIHandler struct {
	Taxonomy    *taxonomy.Taxonomy
	Randomizer  *taxonomy.Randomizer
	Suggestions *services.SuggestionService
	Costs       *services.CostService
	Keywords    KeywordExtractor
	Input       inputprocessor.Processor
	Jobs        store.JobClient
}

// StudyRequest is the body of POST /api/v1/study/suggest.
type StudyRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Mode     string `json:"mode"`
	Async    bool   `json:"async"`
}

// BriefRequest is the body of POST /api/v1/professional/brief.
type BriefRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Persona  string `json:"persona"`
	Mode     string `json:"mode"`
	Async    bool   `json:"async"`
}

// KeywordsRequest is the body of POST /api/v1/keywords.
type KeywordsRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

func (h *APIHandler) GroupsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.Taxonomy.Groups()})
}

func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	professional, err := parseOptionalBool(c.Query("professional"))
	if err != nil {
		BadRequest(c, "Invalid professional flag: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.Taxonomy.Select(c.Query("group"), professional)})
}

func (h *APIHandler) GetCategoryHandler(c *gin.Context) {
	slug := c.Param("slug")
	cat, ok := h.Taxonomy.Get(slug)
	if !ok {
		NotFound(c, fmt.Sprintf("category %q not found", slug))
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat, "path": h.Taxonomy.Lineage(cat)})
}

func (h *APIHandler) RandomSubjectHandler(c *gin.Context) {
	professional, err := parseOptionalBool(c.Query("professional"))
	if err != nil {
		BadRequest(c, "Invalid professional flag: "+err.Error())
		return
	}
	subject, err := h.Randomizer.PickSubject(c.Query("group"), professional)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

func (h *APIHandler) StudyHandler(c *gin.Context) {
	var req StudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := requireSubject(req.Topic, req.Category); err != nil {
		BadRequest(c, err.Error())
		return
	}
	text, err := h.article(c, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Async {
		if h.Jobs == nil {
			Unavailable(c, "background jobs require redis.address")
			return
		}
		info, err := h.Jobs.EnqueueStudy(c.Request.Context(), tasks.StudyPayload{
			Topic: req.Topic, Category: req.Category, Text: text, Mode: req.Mode,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": info.ID, "queue": info.Queue})
		return
	}

	suggestion, err := h.Suggestions.Study(c.Request.Context(), services.StudyParams{
		Topic: req.Topic, Category: req.Category, Text: text, Mode: req.Mode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

func (h *APIHandler) BriefHandler(c *gin.Context) {
	var req BriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := requireSubject(req.Topic, req.Category); err != nil {
		BadRequest(c, err.Error())
		return
	}
	text, err := h.article(c, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Async {
		if h.Jobs == nil {
			Unavailable(c, "background jobs require redis.address")
			return
		}
		info, err := h.Jobs.EnqueueBrief(c.Request.Context(), tasks.BriefPayload{
			Topic: req.Topic, Category: req.Category, Text: text, Persona: req.Persona, Mode: req.Mode,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": info.ID, "queue": info.Queue})
		return
	}

	brief, err := h.Suggestions.Brief(c.Request.Context(), services.BriefParams{
		Topic: req.Topic, Category: req.Category, Text: text, Persona: req.Persona, Mode: req.Mode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brief": brief})
}

func (h *APIHandler) KeywordsHandler(c *gin.Context) {
	var req KeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	res, err := h.Input.Process(c.Request.Context(), inputprocessor.Input{Text: req.Text})
	if err != nil {
		respondError(c, err)
		return
	}
	var kws []string
	if req.Limit > 0 {
		kws = h.Keywords.ExtractN(res.Text, req.Limit)
	} else {
		kws = h.Keywords.Extract(res.Text)
	}
	c.JSON(http.StatusOK, gin.H{"keywords": kws})
}

func (h *APIHandler) HistoryHandler(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	artifacts, err := h.Suggestions.History(c.Request.Context(), c.Query("kind"), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	if artifacts == nil {
		artifacts = []*models.Artifact{}
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts, "limit": page.Limit, "offset": page.Offset})
}

func (h *APIHandler) GetArtifactHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid artifact ID: "+c.Param("id"))
		return
	}
	artifact, err := h.Suggestions.Artifact(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifact": artifact})
}

func (h *APIHandler) CostSummaryHandler(c *gin.Context) {
	summary, err := h.Costs.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *APIHandler) CostUsageHandler(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	logs, err := h.Costs.ListUsage(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	if logs == nil {
		logs = []*models.AIUsageLog{}
	}
	c.JSON(http.StatusOK, gin.H{"usage": logs})
}

// article cleans optional article text. Text that holds no visible content
// after cleaning counts as no article.
func (h *APIHandler) article(c *gin.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	res, err := h.Input.Process(c.Request.Context(), inputprocessor.Input{Text: text})
	if errors.Is(err, models.ErrEmptyArticle) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func requireSubject(topic, category string) error {
	var missing []string
	if strings.TrimSpace(topic) == "" {
		missing = append(missing, "topic")
	}
	if strings.TrimSpace(category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseOptionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parsePagination(c *gin.Context) (clix.PaginationParams, error) {
	limit, offset := 0, 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			return clix.PaginationParams{}, fmt.Errorf("invalid limit: %s", l)
		}
		limit = parsed
	}
	if o := c.Query("offset"); o != "" {
		parsed, err := strconv.Atoi(o)
		if err != nil || parsed < 0 {
			return clix.PaginationParams{}, fmt.Errorf("invalid offset: %s", o)
		}
		offset = parsed
	}
	return clix.NormalizePagination(limit, offset), nil
}
