package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

func TestLoadCreatesOptionalTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.ContentItem{}, &model.Author{}, &model.ItemMeta{},
		&model.Term{}, &model.TermRelationship{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	fx := &Fixture{
		Authors: []fixtureAuthor{{ID: 1, DisplayName: "Maria Rossi"}},
		Items: []fixtureItem{
			{ID: 42, Slug: "my-article", Title: "Titolo", Body: "testo", AuthorID: 1},
			{ID: 7, Slug: "vol-1", Title: "Volume Uno", Type: model.TypeVolume},
		},
		Meta:         []fixtureMeta{{ItemID: 42, Key: model.SubtitleMetaKey, Value: "sub"}},
		CustomFields: []fixtureField{{ItemID: 42, Name: model.SubtitleMetaKey, Value: "acfsub"}},
		VolumeItems:  []fixtureVolumeItem{{ItemID: 42, VolumeID: 7, Position: 1, IsPrimary: true}},
	}
	if err := Load(db, fx); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	m := db.Migrator()
	if !m.HasTable(&model.VolumeItem{}) {
		t.Fatalf("expected volume_items table to be created")
	}
	if !m.HasTable(&model.CustomField{}) {
		t.Fatalf("expected custom_fields table to be created")
	}

	var item model.ContentItem
	if err := db.First(&item, 42).Error; err != nil {
		t.Fatalf("load item error: %v", err)
	}
	// fixture defaults fill in omitted fields
	if item.Type != model.TypeArticle || item.Status != model.StatusPublished || item.Format != model.FormatHTML {
		t.Fatalf("unexpected defaults: %+v", item)
	}

	var count int64
	if err := db.Model(&model.VolumeItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count memberships error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 membership, got %d", count)
	}
}

func TestLoadFileBindsYAMLKeys(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.ContentItem{}, &model.Author{}, &model.ItemMeta{},
		&model.Term{}, &model.TermRelationship{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "content.yaml")
	fixture := `authors:
  - id: 9
    display_name: "Paolo Bianchi"
items:
  - id: 3
    slug: da-file
    title: "Da file"
    author_id: 9
relationships:
  - item_id: 3
    term_id: 1
terms:
  - id: 1
    name: storia
    taxonomy: tag
`
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatalf("write fixture error: %v", err)
	}

	if err := LoadFile(db, path); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	var author model.Author
	if err := db.First(&author, 9).Error; err != nil {
		t.Fatalf("load author error: %v", err)
	}
	if author.DisplayName != "Paolo Bianchi" {
		t.Fatalf("display_name did not bind: %+v", author)
	}
	var rel model.TermRelationship
	if err := db.Where("item_id = ?", 3).First(&rel).Error; err != nil {
		t.Fatalf("load relationship error: %v", err)
	}
	if rel.TermID != 1 {
		t.Fatalf("term_id did not bind: %+v", rel)
	}
}

func TestLoadWithoutOptionalSections(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.ContentItem{}, &model.Author{}, &model.ItemMeta{},
		&model.Term{}, &model.TermRelationship{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	fx := &Fixture{
		Items: []fixtureItem{{ID: 1, Slug: "solo", Title: "Solo"}},
	}
	if err := Load(db, fx); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if db.Migrator().HasTable(&model.VolumeItem{}) {
		t.Fatalf("volume_items must stay absent when the fixture has no memberships")
	}
}
