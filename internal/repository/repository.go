package repository

import (
	"errors"

	"github.com/czpress/article-api/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

type ContentRepository interface {
	// GetPublishedArticleBySlug returns the published article with the given
	// slug, restricted to the article content type. ErrNotFound on no match.
	GetPublishedArticleBySlug(slug string) (*model.ContentItem, error)
	// GetPublishedArticleByID is the id-keyed variant of the slug lookup.
	GetPublishedArticleByID(id uint) (*model.ContentItem, error)
	// GetTitle returns the raw title of any content item, regardless of
	// type or status.
	GetTitle(id uint) (string, error)
}

type AuthorRepository interface {
	DisplayName(id uint) (string, error)
}

type MetaRepository interface {
	// Get returns the first metadata value stored for the item under key.
	Get(itemID uint, key string) (string, error)
}

// CustomFieldRepository is the backing store of the optional custom-field
// provider. Values are loosely typed, matching the provider contract.
type CustomFieldRepository interface {
	Field(itemID uint, name string) (any, error)
}

type VolumeRepository interface {
	// PrimaryVolumeID returns the id of the winning volume for the item, or
	// zero when the membership table is absent or holds no rows for it.
	PrimaryVolumeID(itemID uint) (uint, error)
}

type TermRepository interface {
	// TagsForItem returns the tag-taxonomy terms attached to the item in
	// attachment order.
	TagsForItem(itemID uint) ([]model.Term, error)
}
