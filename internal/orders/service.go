package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/stockroom/internal/stock"
	"github.com/angelmondragon/stockroom/pkg/db"
	"github.com/angelmondragon/stockroom/pkg/db/models"
	"github.com/angelmondragon/stockroom/pkg/enums"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Service owns order creation and status transitions. The only mutation
// with a side effect is the transition into Received, which emits an
// OrderReceived event to the stock ledger exactly once per order.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, orderID int, newStatus enums.OrderStatus) (*models.PurchaseOrder, error)
	List(ctx context.Context) ([]models.PurchaseOrder, error)
	ListByStatus(ctx context.Context, status enums.OrderStatus) ([]models.PurchaseOrder, error)
}

// Transactor runs a function inside a single store transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ReceiptApplier consumes OrderReceived events inside the caller's
// transaction. Implemented by the stock ledger.
type ReceiptApplier interface {
	ApplyReceipt(ctx context.Context, tx *gorm.DB, event stock.OrderReceived) error
}

// ItemDirectory resolves item references before an order is accepted.
type ItemDirectory interface {
	FindItem(ctx context.Context, itemID int) (*models.Item, error)
}

// SupplierDirectory resolves supplier references before an order is accepted.
type SupplierDirectory interface {
	FindSupplier(ctx context.Context, supplierID int) (*models.Supplier, error)
}

// ServiceParams bundles the order lifecycle dependencies.
type ServiceParams struct {
	Repo       Repository
	Transactor Transactor
	Receipts   ReceiptApplier
	Items      ItemDirectory
	Suppliers  SupplierDirectory
}

type service struct {
	repo       Repository
	transactor Transactor
	receipts   ReceiptApplier
	items      ItemDirectory
	suppliers  SupplierDirectory
	validate   *validator.Validate
}

// CreateOrderInput captures the fields a new purchase order requires.
type CreateOrderInput struct {
	ItemID     int `validate:"gt=0"`
	SupplierID int `validate:"gt=0"`
	Quantity   int `validate:"gt=0"`
	Status     enums.OrderStatus
}

// NewService wires the order lifecycle.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	if params.Transactor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "transactor required")
	}
	if params.Receipts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "receipt applier required")
	}
	if params.Items == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "item directory required")
	}
	if params.Suppliers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "supplier directory required")
	}
	return &service{
		repo:       params.Repo,
		transactor: params.Transactor,
		receipts:   params.Receipts,
		items:      params.Items,
		suppliers:  params.Suppliers,
		validate:   validator.New(),
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.PurchaseOrder, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order")
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", input.Status))
	}

	if _, err := s.items.FindItem(ctx, input.ItemID); err != nil {
		return nil, err
	}
	if _, err := s.suppliers.FindSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	order := &models.PurchaseOrder{
		SupplierID: input.SupplierID,
		ItemID:     input.ItemID,
		Quantity:   input.Quantity,
		OrderDate:  time.Now().UTC(),
		Status:     input.Status,
	}

	// An order born Received counts as a transition from an implicit
	// never-received state; the receipt applies in the same transaction
	// as the insert.
	if input.Status == enums.OrderStatusReceived {
		err := s.transactor.WithTx(ctx, func(tx *gorm.DB) error {
			if err := s.repo.WithTx(tx).Create(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
			}
			return s.receipts.ApplyReceipt(ctx, tx, stock.OrderReceived{
				OrderID:  order.ID,
				ItemID:   order.ItemID,
				Quantity: order.Quantity,
			})
		})
		if err != nil {
			return nil, err
		}
		return order, nil
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return order, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID int, newStatus enums.OrderStatus) (*models.PurchaseOrder, error) {
	if !newStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", newStatus))
	}

	current, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no order found with ID: %d", orderID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find order")
	}

	receiving := current.Status != enums.OrderStatusReceived && newStatus == enums.OrderStatusReceived

	if receiving {
		// Status write and inventory increment commit together so a
		// crash cannot apply one without the other.
		err := s.transactor.WithTx(ctx, func(tx *gorm.DB) error {
			if _, err := s.repo.WithTx(tx).UpdateStatus(ctx, orderID, newStatus); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
			}
			return s.receipts.ApplyReceipt(ctx, tx, stock.OrderReceived{
				OrderID:  current.ID,
				ItemID:   current.ItemID,
				Quantity: current.Quantity,
			})
		})
		if err != nil {
			return nil, err
		}
	} else {
		if _, err := s.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
	}

	current.Status = newStatus
	return current, nil
}

func (s *service) List(ctx context.Context) ([]models.PurchaseOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListByStatus(ctx context.Context, status enums.OrderStatus) ([]models.PurchaseOrder, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}
	orders, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders by status")
	}
	return orders, nil
}
