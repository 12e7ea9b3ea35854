package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hausa-translate/internal/models"
)

const (
	// maxBatchSize bounds how many texts one batch request may carry.
	maxBatchSize = 100
	// maxHistoryLimit bounds the history page size, matching the
	// ledger's own ceiling.
	maxHistoryLimit = 100
)

// TranslationRequest is the payload for POST /translate.
type TranslationRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// BatchTranslationRequest is the payload for POST /translate/batch.
type BatchTranslationRequest struct {
	Texts      []string `json:"texts" binding:"required"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) translate(c *gin.Context) {
	var req TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyDefaults(&req.SourceLang, &req.TargetLang)

	result, err := s.svc.Translate(req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.respondError(c, err, "Translation failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) batchTranslate(c *gin.Context) {
	var req BatchTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Texts) > maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maximum 100 texts per batch"})
		return
	}
	applyDefaults(&req.SourceLang, &req.TargetLang)

	results, err := s.svc.BatchTranslate(req.Texts, req.SourceLang, req.TargetLang)
	if err != nil {
		s.respondError(c, err, "Batch translation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translations": results,
		"count":        len(results),
	})
}

func (s *Server) history(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	history := s.svc.Recent(limit)
	if history == nil {
		history = []models.TranslationResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

func (s *Server) languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": s.svc.Languages()})
}

// respondError maps engine error kinds to HTTP statuses: user-correctable
// validation failures become 400, strategy failures 500.
func (s *Server) respondError(c *gin.Context, err error, logMsg string) {
	var unsupported *models.UnsupportedLanguageError
	var empty *models.EmptyInputError
	if errors.As(err, &unsupported) || errors.As(err, &empty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.logger.Error(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
}

func applyDefaults(sourceLang, targetLang *string) {
	if *sourceLang == "" {
		*sourceLang = "en"
	}
	if *targetLang == "" {
		*targetLang = "ha"
	}
}
