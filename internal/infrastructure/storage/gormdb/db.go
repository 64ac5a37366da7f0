package gormdb

import (
	"fmt"

	"gorm.io/gorm"
)

// NewDB creates a new instance of database connection using GORM
func NewDB(dialector gorm.Dialector, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(&SubmittedTransactionModel{}, &ProposalModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
