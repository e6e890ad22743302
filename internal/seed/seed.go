// Package seed loads a yaml fixture into the content database. It is the
// only write path in the repository; the service itself is read-only.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

type Fixture struct {
	Authors       []fixtureAuthor       `yaml:"authors"`
	Items         []fixtureItem         `yaml:"items"`
	Meta          []fixtureMeta         `yaml:"meta"`
	CustomFields  []fixtureField        `yaml:"custom_fields"`
	Terms         []fixtureTerm         `yaml:"terms"`
	Relationships []fixtureRelationship `yaml:"relationships"`
	VolumeItems   []fixtureVolumeItem   `yaml:"volume_items"`
}

type fixtureAuthor struct {
	ID          uint   `yaml:"id"`
	DisplayName string `yaml:"display_name"`
}

type fixtureTerm struct {
	ID       uint   `yaml:"id"`
	Name     string `yaml:"name"`
	Taxonomy string `yaml:"taxonomy"`
}

type fixtureRelationship struct {
	ItemID uint `yaml:"item_id"`
	TermID uint `yaml:"term_id"`
}

type fixtureVolumeItem struct {
	ItemID    uint `yaml:"item_id"`
	VolumeID  uint `yaml:"volume_id"`
	Position  int  `yaml:"position"`
	IsPrimary bool `yaml:"is_primary"`
}

type fixtureItem struct {
	ID       uint   `yaml:"id"`
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Format   string `yaml:"format"`
	Type     string `yaml:"type"`
	Status   string `yaml:"status"`
	AuthorID uint   `yaml:"author_id"`
}

type fixtureMeta struct {
	ItemID uint   `yaml:"item_id"`
	Key    string `yaml:"key"`
	Value  string `yaml:"value"`
}

type fixtureField struct {
	ItemID uint   `yaml:"item_id"`
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
}

func LoadFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}
	return Load(db, &fx)
}

func Load(db *gorm.DB, fx *Fixture) error {
	// optional tables come into existence only when the fixture needs them
	if len(fx.VolumeItems) > 0 {
		if err := db.AutoMigrate(&model.VolumeItem{}); err != nil {
			return fmt.Errorf("migrate volume_items: %w", err)
		}
	}
	if len(fx.CustomFields) > 0 {
		if err := db.AutoMigrate(&model.CustomField{}); err != nil {
			return fmt.Errorf("migrate custom_fields: %w", err)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range fx.Authors {
			author := model.Author{ID: a.ID, DisplayName: a.DisplayName}
			if err := tx.Create(&author).Error; err != nil {
				return err
			}
		}
		for _, it := range fx.Items {
			item := model.ContentItem{
				ID:       it.ID,
				Slug:     it.Slug,
				Title:    it.Title,
				Body:     it.Body,
				Format:   it.Format,
				Type:     it.Type,
				Status:   it.Status,
				AuthorID: it.AuthorID,
			}
			if item.Format == "" {
				item.Format = model.FormatHTML
			}
			if item.Type == "" {
				item.Type = model.TypeArticle
			}
			if item.Status == "" {
				item.Status = model.StatusPublished
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		for _, m := range fx.Meta {
			meta := model.ItemMeta{ItemID: m.ItemID, Key: m.Key, Value: m.Value}
			if err := tx.Create(&meta).Error; err != nil {
				return err
			}
		}
		for _, f := range fx.CustomFields {
			field := model.CustomField{ItemID: f.ItemID, Name: f.Name, Value: f.Value}
			if err := tx.Create(&field).Error; err != nil {
				return err
			}
		}
		for _, t := range fx.Terms {
			term := model.Term{ID: t.ID, Name: t.Name, Taxonomy: t.Taxonomy}
			if err := tx.Create(&term).Error; err != nil {
				return err
			}
		}
		for _, rel := range fx.Relationships {
			relationship := model.TermRelationship{ItemID: rel.ItemID, TermID: rel.TermID}
			if err := tx.Create(&relationship).Error; err != nil {
				return err
			}
		}
		for _, vi := range fx.VolumeItems {
			membership := model.VolumeItem{
				ItemID:    vi.ItemID,
				VolumeID:  vi.VolumeID,
				Position:  vi.Position,
				IsPrimary: vi.IsPrimary,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
