package stock

import (
	"context"

	"github.com/angelmondragon/stockroom/pkg/db/models"
	"github.com/angelmondragon/stockroom/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for inventory items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, itemID int, columns map[string]any) (int64, error)
	FindByID(ctx context.Context, itemID int) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	ListLowStock(ctx context.Context) ([]models.Item, error)
	ListLowStockLackingPendingAlert(ctx context.Context) ([]models.Item, error)
	IncrementQuantity(ctx context.Context, itemID, delta int) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a stock repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repositoryImpl) Update(ctx context.Context, itemID int, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("item_id = ?", itemID).
		Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, itemID int) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("item_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) ListLowStock(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= threshold").
		Order("item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListLowStockLackingPendingAlert returns low-stock items with no Pending
// alert yet. The NOT IN subquery is what keeps the low-stock scan
// idempotent.
func (r *repositoryImpl) ListLowStockLackingPendingAlert(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= threshold").
		Where("item_id NOT IN (?)",
			r.db.Model(&models.Alert{}).
				Select("item_id").
				Where("status = ?", enums.AlertStatusPending.String()),
		).
		Order("item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) IncrementQuantity(ctx context.Context, itemID, delta int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("item_id = ?", itemID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
