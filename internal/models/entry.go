package models

import "time"

// TimeEntry is an immutable financial snapshot of one unit of logged
// work. The breakdown columns are computed once through the earnings
// pipeline at creation time and are never recomputed, so later edits
// to the deduction or currency settings cannot retroactively change
// historical figures. Entries are deleted outright, never edited.
type TimeEntry struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"index;not null"`

	// Minutes is the canonical duration; 0 for fixed-price milestones.
	Minutes int `gorm:"not null"`
	// InputFormat records which parsing rule produced Minutes
	// ("hm" or "fractional"); empty for milestones.
	InputFormat string `gorm:"size:16"`
	// RawInput keeps the user-typed value verbatim so entries can be
	// replayed if the parsing rule is ever revisited.
	RawInput string `gorm:"size:32"`

	Date        time.Time `gorm:"index;not null"`
	Description string    `gorm:"size:255"`

	GrossUSD          float64 `gorm:"column:gross_usd;not null"`
	DeductionService  float64 `gorm:"column:deduction_service;not null"`
	DeductionTDS      float64 `gorm:"column:deduction_tds;not null"`
	DeductionGST      float64 `gorm:"column:deduction_gst;not null"`
	DeductionTransfer float64 `gorm:"column:deduction_transfer;not null"`
	DeductionTotal    float64 `gorm:"column:deduction_total;not null"`
	NetUSD            float64 `gorm:"column:net_usd;not null"`
	NetINR            float64 `gorm:"column:net_inr;not null"`
	ExchangeRate      float64 `gorm:"column:exchange_rate;not null"`

	CreatedAt time.Time
}
