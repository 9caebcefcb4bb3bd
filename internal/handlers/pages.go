package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the marketing and order page. The reCAPTCHA site key
// is injected at render time so the template stays environment-free.
type PageHandler struct {
	siteKey string
}

func NewPageHandler(siteKey string) *PageHandler {
	return &PageHandler{siteKey: siteKey}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SiteKey": h.siteKey,
	})
}
