package repository

import (
	"context"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

type entryRepo struct {
	db *gorm.DB
}

func (r *entryRepo) List(ctx context.Context, f EntryFilter) ([]models.TimeEntry, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.TimeEntry{})
	if f.ProjectID != 0 {
		base = base.Where("project_id = ?", f.ProjectID)
	}
	if f.From != nil {
		base = base.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		base = base.Where("date < ?", *f.To)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.Session(&gorm.Session{}).Order("date DESC, id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var entries []models.TimeEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *entryRepo) Get(ctx context.Context, id uint) (*models.TimeEntry, error) {
	var e models.TimeEntry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *entryRepo) Create(ctx context.Context, e *models.TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.TimeEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *entryRepo) SumGrossForProject(ctx context.Context, projectID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.TimeEntry{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(gross_usd), 0)").
		Scan(&total).Error
	return total, err
}

func (r *entryRepo) SumNet(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.TimeEntry{}).
		Select("COALESCE(SUM(net_usd), 0)").
		Scan(&total).Error
	return total, err
}
