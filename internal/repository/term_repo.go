package repository

import (
	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) TagsForItem(itemID uint) ([]model.Term, error) {
	var terms []model.Term
	err := r.db.Model(&model.Term{}).
		Select("terms.id, terms.name, terms.taxonomy").
		Joins("INNER JOIN term_relationships ON term_relationships.term_id = terms.id").
		Where("term_relationships.item_id = ? AND terms.taxonomy = ?", itemID, model.TaxonomyTag).
		Order("term_relationships.id").
		Find(&terms).Error
	return terms, err
}
