package repository

import (
	"context"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

type projectRepo struct {
	db *gorm.DB
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Get(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Update(ctx context.Context, p *models.Project) error {
	res := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":  p.Name,
			"type":  p.Type,
			"rate":  p.Rate,
			"color": p.Color,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project and every time entry logged against it in
// one transaction, so earnings snapshots never outlive their project.
func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Project{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("project_id = ?", id).Delete(&models.TimeEntry{}).Error
	})
}
