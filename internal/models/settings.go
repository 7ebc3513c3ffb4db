package models

import "time"

// DeductionConfig is a single global row (get-or-create on write).
// Percentages are whole numbers: 10 means 10%. Editing it has no
// retroactive effect; existing entries keep their snapshot.
type DeductionConfig struct {
	ID                uint    `gorm:"primaryKey"`
	ServiceFeePercent float64 `gorm:"column:service_fee_percent;not null"`
	TDSPercent        float64 `gorm:"column:tds_percent;not null"`
	GSTPercent        float64 `gorm:"column:gst_percent;not null"`
	TransferFeeUSD    float64 `gorm:"column:transfer_fee_usd;not null"` // flat USD
	UpdatedAt         time.Time
}

// CurrencyConfig is the operator-supplied USD→INR rate, also a single
// global row. The rate is snapshotted into every entry at creation.
type CurrencyConfig struct {
	ID          uint    `gorm:"primaryKey"`
	USDToINR    float64 `gorm:"column:usd_to_inr;not null"`
	LastUpdated time.Time
}
