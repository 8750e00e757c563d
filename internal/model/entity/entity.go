package entity

import "gorm.io/gorm"

// AutoMigrate migrates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// master data
		&User{},
		&Customer{},

		// orders & design
		&Order{},
		&ProductionLog{},

		// inventory
		&PaperStock{},
		&PaperRequest{},
		&FabricStock{},
		&FabricTransaction{},

		// finance
		&Account{},
		&Budget{},
		&Payable{},
		&JournalEntry{},
		&JournalLine{},
	)
}
