package models

import "time"

// Backup tracks a JSON snapshot file of the whole ledger.
type Backup struct {
	ID        uint   `gorm:"primaryKey"`
	FileName  string `gorm:"size:128;not null"`
	FilePath  string `gorm:"size:255;not null"`
	Size      int64  `gorm:"not null"`
	CreatedAt time.Time
}
