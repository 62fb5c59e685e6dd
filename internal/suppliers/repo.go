package suppliers

import (
	"context"

	"github.com/angelmondragon/stockroom/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for suppliers.
type Repository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplierID int, columns map[string]any) (int64, error)
	FindByID(ctx context.Context, supplierID int) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a suppliers repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *repositoryImpl) Update(ctx context.Context, supplierID int, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("supplier_id = ?", supplierID).
		Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, supplierID int) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("supplier_id ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}
