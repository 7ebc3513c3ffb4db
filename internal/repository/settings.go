package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

// settingsRepo manages the two singleton config rows. Reads report
// ErrNotConfigured when the row is absent; updates get-or-create it.
type settingsRepo struct {
	db *gorm.DB
}

func (r *settingsRepo) GetDeductions(ctx context.Context) (*models.DeductionConfig, error) {
	var c models.DeductionConfig
	err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *settingsRepo) UpdateDeductions(ctx context.Context, c *models.DeductionConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.DeductionConfig
		err := tx.Order("id ASC").First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(c).Error
		case err != nil:
			return err
		}
		c.ID = existing.ID
		return tx.Model(&existing).Updates(map[string]any{
			"service_fee_percent": c.ServiceFeePercent,
			"tds_percent":         c.TDSPercent,
			"gst_percent":         c.GSTPercent,
			"transfer_fee_usd":    c.TransferFeeUSD,
		}).Error
	})
}

func (r *settingsRepo) GetCurrency(ctx context.Context) (*models.CurrencyConfig, error) {
	var c models.CurrencyConfig
	err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *settingsRepo) UpdateCurrency(ctx context.Context, usdToINR float64) (*models.CurrencyConfig, error) {
	var out *models.CurrencyConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CurrencyConfig
		err := tx.Order("id ASC").First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.CurrencyConfig{USDToINR: usdToINR, LastUpdated: time.Now()}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			out = &created
			return nil
		case err != nil:
			return err
		}
		existing.USDToINR = usdToINR
		existing.LastUpdated = time.Now()
		if err := tx.Model(&models.CurrencyConfig{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"usd_to_inr":   existing.USDToINR,
				"last_updated": existing.LastUpdated,
			}).Error; err != nil {
			return err
		}
		out = &existing
		return nil
	})
	return out, err
}
