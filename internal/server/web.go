package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Languages": s.svc.Languages(),
		"Text":      "",
	})
}

func (s *Server) aboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}

// webTranslate handles the browser form. Errors render back into the page
// instead of a JSON body.
func (s *Server) webTranslate(c *gin.Context) {
	text := c.PostForm("text")
	sourceLang := c.DefaultPostForm("source_lang", "en")
	targetLang := c.DefaultPostForm("target_lang", "ha")

	result, err := s.svc.Translate(text, sourceLang, targetLang)
	if err != nil {
		s.logger.Warn("Web translation failed", zap.Error(err))
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Languages": s.svc.Languages(),
			"Error":     err.Error(),
			"Text":      text,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Languages": s.svc.Languages(),
		"Result":    result,
		"Text":      result.OriginalText,
	})
}
