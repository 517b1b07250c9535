// Package migration stores all database migrations
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/model"
)

func init() {
	// Do Not Edit Migration ID!
	migrationID := "20251201_150000"

	database.RegisterMigration(&gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logApplying(migrationID)

			return tx.AutoMigrate(&model.User{}, &model.Blog{}, &model.BlogView{})
		},
		Rollback: func(tx *gorm.DB) error {
			logRollingBack(migrationID)

			return tx.Migrator().DropTable(&model.BlogView{}, &model.Blog{}, &model.User{})
		},
	})
}
