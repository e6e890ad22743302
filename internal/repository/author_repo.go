package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) DisplayName(id uint) (string, error) {
	var author model.Author
	err := r.db.Select("display_name").First(&author, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return author.DisplayName, nil
}
