package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/czpress/article-api/internal/pkg/slug"
	"github.com/czpress/article-api/internal/repository"
	"github.com/czpress/article-api/internal/service"
)

type ArticleHandler struct {
	service *service.ArticleService
}

func NewArticleHandler(service *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// GetBySlug handles GET /api/v1/articles/by-slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	key := slug.Sanitize(c.Param("slug"))
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_slug", "message": "slug is not valid"})
		return
	}

	article, err := h.service.GetBySlug(key)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetByID handles GET /api/v1/articles/by-id/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_id", "message": "id must be a positive integer"})
		return
	}

	article, err := h.service.GetByID(uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "article not found"})
		return
	}
	klog.Errorf("article lookup: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": "internal error"})
}
