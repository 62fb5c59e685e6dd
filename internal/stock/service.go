package stock

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/internal/alerts"
	"github.com/angelmondragon/stockroom/pkg/db"
	"github.com/angelmondragon/stockroom/pkg/db/models"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderReceived is the event the order lifecycle emits when an order
// transitions into Received. The ledger applies it exactly once per
// order: the emitter guarantees the transition fired from a
// non-Received state.
type OrderReceived struct {
	OrderID  int
	ItemID   int
	Quantity int
}

// Service owns item quantity mutation rules and low-stock detection.
type Service interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int, patch UpdateItemInput) (*models.Item, error)
	FindItem(ctx context.Context, itemID int) (*models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	ListLowStockItems(ctx context.Context) ([]models.Item, error)
	AdjustQuantity(ctx context.Context, itemID, delta int) error
	EvaluateLowStock(ctx context.Context) ([]models.Alert, error)
	ApplyReceipt(ctx context.Context, tx *gorm.DB, event OrderReceived) error
}

type service struct {
	repo     Repository
	alerts   alerts.Service
	validate *validator.Validate
}

// CreateItemInput captures the fields a new item requires.
type CreateItemInput struct {
	Name        string `validate:"required"`
	Description string
	Quantity    int             `validate:"gte=0"`
	Price       decimal.Decimal `validate:"-"`
	Threshold   int             `validate:"gte=0"`
}

// UpdateItemInput is a partial update; nil fields keep current values.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Quantity    *int             `validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `validate:"-"`
	Threshold   *int             `validate:"omitempty,gte=0"`
}

// NewService wires the stock ledger.
func NewService(repo Repository, alertsService alerts.Service) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "stock repository required")
	}
	if alertsService == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alerts service required")
	}
	return &service{
		repo:     repo,
		alerts:   alertsService,
		validate: validator.New(),
	}, nil
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*models.Item, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	item := &models.Item{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Threshold:   input.Threshold,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}

	// A brand new item may already sit at or below its threshold.
	if _, err := s.evaluateLowStock(ctx, s.repo, s.alerts); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, itemID int, patch UpdateItemInput) (*models.Item, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item update")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	columns := map[string]any{}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Quantity != nil {
		columns["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		columns["price"] = *patch.Price
	}
	if patch.Threshold != nil {
		columns["threshold"] = *patch.Threshold
	}
	if len(columns) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	rows, err := s.repo.Update(ctx, itemID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no item found with ID: %d", itemID))
	}

	if _, err := s.evaluateLowStock(ctx, s.repo, s.alerts); err != nil {
		return nil, err
	}
	return s.FindItem(ctx, itemID)
}

func (s *service) FindItem(ctx context.Context, itemID int) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no item found with ID: %d", itemID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find item")
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	return items, nil
}

func (s *service) ListLowStockItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list low stock items")
	}
	return items, nil
}

// AdjustQuantity applies an additive change to an item's stored quantity
// and re-runs the low-stock scan.
func (s *service) AdjustQuantity(ctx context.Context, itemID, delta int) error {
	if err := s.applyDelta(ctx, s.repo, itemID, delta); err != nil {
		return err
	}
	_, err := s.evaluateLowStock(ctx, s.repo, s.alerts)
	return err
}

// EvaluateLowStock creates a Pending alert for every low-stock item that
// lacks one. Running it twice in a row creates nothing the second time.
func (s *service) EvaluateLowStock(ctx context.Context) ([]models.Alert, error) {
	return s.evaluateLowStock(ctx, s.repo, s.alerts)
}

// ApplyReceipt consumes an OrderReceived event inside the caller's
// transaction: the quantity increment and the follow-up low-stock scan
// commit or roll back together with the status write.
func (s *service) ApplyReceipt(ctx context.Context, tx *gorm.DB, event OrderReceived) error {
	repo := s.repo.WithTx(tx)
	if err := s.applyDelta(ctx, repo, event.ItemID, event.Quantity); err != nil {
		return err
	}
	_, err := s.evaluateLowStock(ctx, repo, s.alerts.WithTx(tx))
	return err
}

func (s *service) applyDelta(ctx context.Context, repo Repository, itemID, delta int) error {
	rows, err := repo.IncrementQuantity(ctx, itemID, delta)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjust quantity")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no item found with ID: %d", itemID))
	}
	return nil
}

func (s *service) evaluateLowStock(ctx context.Context, repo Repository, registry alerts.Service) ([]models.Alert, error) {
	items, err := repo.ListLowStockLackingPendingAlert(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "scan low stock")
	}

	created := make([]models.Alert, 0, len(items))
	for _, item := range items {
		alert, err := registry.CreateLowStockAlert(ctx, item)
		if err != nil {
			return created, err
		}
		created = append(created, *alert)
	}
	return created, nil
}
