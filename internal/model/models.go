package model

import (
	"time"
)

// Content item types and statuses used by the lookup pipeline. The content
// store may hold other types and statuses; only these are visible here.
const (
	TypeArticle = "article"
	TypeVolume  = "volume"

	StatusPublished = "published"

	FormatHTML     = "html"
	FormatMarkdown = "markdown"

	TaxonomyTag = "tag"

	// SubtitleMetaKey is the metadata key the subtitle fallback reads.
	SubtitleMetaKey = "sottotitolo"
)

type ContentItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"size:255;index"`
	Title     string    `json:"title" gorm:"size:500"`
	Body      string    `json:"body" gorm:"type:text"`
	Format    string    `json:"format" gorm:"size:20;default:html"` // html, markdown
	Type      string    `json:"type" gorm:"size:50;index;not null"` // article, volume, ...
	Status    string    `json:"status" gorm:"size:50;default:draft"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Author struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DisplayName string    `json:"display_name" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemMeta is the generic key/value metadata store attached to content items.
type ItemMeta struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	ItemID uint   `json:"item_id" gorm:"index;not null"`
	Key    string `json:"key" gorm:"column:meta_key;size:255;not null"`
	Value  string `json:"value" gorm:"column:meta_value;type:text"`
}

// CustomField backs the optional custom-field provider. The table is only
// migrated when the custom-fields feature is enabled.
type CustomField struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	ItemID uint   `json:"item_id" gorm:"index;not null"`
	Name   string `json:"name" gorm:"size:255;not null"`
	Value  string `json:"value" gorm:"type:text"`
}

// VolumeItem is a membership row linking an article into a volume. The table
// is an optional schema extension owned by an external migration: it is never
// auto-migrated by the server, and the is_primary column may be missing on
// older installations.
type VolumeItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ItemID    uint `json:"item_id" gorm:"index;not null"`
	VolumeID  uint `json:"volume_id" gorm:"not null"`
	Position  int  `json:"position" gorm:"default:0"`
	IsPrimary bool `json:"is_primary" gorm:"default:false"`
}

func (VolumeItem) TableName() string {
	return "volume_items"
}

type Term struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Taxonomy string `json:"taxonomy" gorm:"size:50;index;not null"` // tag, ...
}

type TermRelationship struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	ItemID uint `json:"item_id" gorm:"index;not null"`
	TermID uint `json:"term_id" gorm:"index;not null"`
}
