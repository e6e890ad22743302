package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetPublishedArticleBySlug(slug string) (*model.ContentItem, error) {
	var items []model.ContentItem
	err := r.db.
		Where("slug = ? AND type = ? AND status = ?", slug, model.TypeArticle, model.StatusPublished).
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	// slugs are expected unique among published articles; if the store ever
	// holds duplicates the first row wins
	return &items[0], nil
}

func (r *contentRepository) GetPublishedArticleByID(id uint) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.db.
		Where("id = ? AND type = ? AND status = ?", id, model.TypeArticle, model.StatusPublished).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository) GetTitle(id uint) (string, error) {
	var item model.ContentItem
	err := r.db.Select("title").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return item.Title, nil
}
