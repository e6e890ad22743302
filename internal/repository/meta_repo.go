package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type metaRepository struct {
	db *gorm.DB
}

func NewMetaRepository(db *gorm.DB) MetaRepository {
	return &metaRepository{db: db}
}

func (r *metaRepository) Get(itemID uint, key string) (string, error) {
	var meta model.ItemMeta
	err := r.db.
		Where("item_id = ? AND meta_key = ?", itemID, key).
		Order("id").
		First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return meta.Value, nil
}

type customFieldRepository struct {
	db *gorm.DB
}

// NewCustomFieldRepository returns the database-backed custom-field provider.
func NewCustomFieldRepository(db *gorm.DB) CustomFieldRepository {
	return &customFieldRepository{db: db}
}

func (r *customFieldRepository) Field(itemID uint, name string) (any, error) {
	var field model.CustomField
	err := r.db.
		Where("item_id = ? AND name = ?", itemID, name).
		Order("id").
		First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return field.Value, nil
}
