package repository

import (
	"context"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

type backupRepo struct {
	db *gorm.DB
}

func (r *backupRepo) Create(ctx context.Context, b *models.Backup) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *backupRepo) List(ctx context.Context) ([]models.Backup, error) {
	var backups []models.Backup
	err := r.db.WithContext(ctx).Order("id DESC").Find(&backups).Error
	return backups, err
}

func (r *backupRepo) Get(ctx context.Context, id uint) (*models.Backup, error) {
	var b models.Backup
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *backupRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Backup{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
