package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/stockroom/pkg/db/models"
	"github.com/angelmondragon/stockroom/pkg/enums"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"gorm.io/gorm"
)

// Service defines alert registry operations. At most one Pending alert
// exists per item; the caller (the stock ledger) enforces the dedup rule
// before asking for a new alert.
type Service interface {
	WithTx(tx *gorm.DB) Service
	CreateLowStockAlert(ctx context.Context, item models.Item) (*models.Alert, error)
	Resolve(ctx context.Context, alertID int) error
	List(ctx context.Context) ([]models.Alert, error)
}

type service struct {
	repo Repository
}

// NewService wires the alert registry.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alerts repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) WithTx(tx *gorm.DB) Service {
	if tx == nil {
		return s
	}
	return &service{repo: s.repo.WithTx(tx)}
}

func (s *service) CreateLowStockAlert(ctx context.Context, item models.Item) (*models.Alert, error) {
	alert := &models.Alert{
		ItemID:    item.ID,
		Message:   fmt.Sprintf("Low stock alert: %s (Current: %d, Threshold: %d)", item.Name, item.Quantity, item.Threshold),
		AlertDate: time.Now().UTC(),
		Status:    enums.AlertStatusPending,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create low stock alert")
	}
	return alert, nil
}

// Resolve marks the alert Resolved. The write is unconditional: resolving
// an already-resolved alert is a no-op, and nothing ever moves an alert
// back to Pending.
func (s *service) Resolve(ctx context.Context, alertID int) error {
	if alertID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "alert id required")
	}

	rows, err := s.repo.SetStatus(ctx, alertID, enums.AlertStatusResolved.String())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve alert")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no alert found with ID: %d", alertID))
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list alerts")
	}
	return alerts, nil
}
