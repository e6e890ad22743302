package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/czpress/article-api/internal/model"
)

func InitDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// pure-Go sqlite via github.com/glebarez/sqlite
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// volume_items is deliberately absent here: it belongs to an external
	// schema extension and is discovered at runtime.
	if err := db.AutoMigrate(
		&model.ContentItem{},
		&model.Author{},
		&model.ItemMeta{},
		&model.Term{},
		&model.TermRelationship{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// MigrateCustomFields creates the custom-field table. Called only when the
// custom-fields feature is enabled.
func MigrateCustomFields(db *gorm.DB) error {
	return db.AutoMigrate(&model.CustomField{})
}
