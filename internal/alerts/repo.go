package alerts

import (
	"context"

	"github.com/angelmondragon/stockroom/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for low-stock alerts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context) ([]models.Alert, error)
	SetStatus(ctx context.Context, alertID int, status string) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an alerts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).
		Preload("Item").
		Order("alert_date DESC, alert_id DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *repositoryImpl) SetStatus(ctx context.Context, alertID int, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("alert_id = ?", alertID).
		UpdateColumn("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
