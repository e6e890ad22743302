package repository

import (
	"database/sql"
	"sync"

	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type volumeRepository struct {
	db *gorm.DB

	// schema capabilities, resolved once per process
	once       sync.Once
	hasTable   bool
	hasPrimary bool
}

func NewVolumeRepository(db *gorm.DB) VolumeRepository {
	return &volumeRepository{db: db}
}

// capabilities probes the optional volume_items extension. A missing table
// or column means the feature is absent, never an error.
func (r *volumeRepository) capabilities() (hasTable, hasPrimary bool) {
	r.once.Do(func() {
		m := r.db.Migrator()
		r.hasTable = m.HasTable(&model.VolumeItem{})
		if r.hasTable {
			r.hasPrimary = m.HasColumn(&model.VolumeItem{}, "is_primary")
		}
	})
	return r.hasTable, r.hasPrimary
}

func (r *volumeRepository) PrimaryVolumeID(itemID uint) (uint, error) {
	hasTable, hasPrimary := r.capabilities()
	if !hasTable {
		return 0, nil
	}

	order := "volume_items.position ASC, volume_items.id ASC"
	if hasPrimary {
		order = "volume_items.is_primary DESC, " + order
	}

	var volumeID sql.NullInt64
	err := r.db.Table("volume_items").
		Select("volume_items.volume_id").
		Joins("INNER JOIN content_items ON content_items.id = volume_items.volume_id").
		Where("volume_items.item_id = ? AND content_items.type = ?", itemID, model.TypeVolume).
		Order(order).
		Limit(1).
		Scan(&volumeID).Error
	if err != nil {
		return 0, err
	}
	if !volumeID.Valid {
		return 0, nil
	}
	return uint(volumeID.Int64), nil
}
