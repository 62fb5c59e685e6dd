package suppliers

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/pkg/db"
	"github.com/angelmondragon/stockroom/pkg/db/models"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Service defines supplier directory operations.
type Service interface {
	Create(ctx context.Context, input CreateSupplierInput) (*models.Supplier, error)
	Update(ctx context.Context, supplierID int, patch UpdateSupplierInput) (*models.Supplier, error)
	FindSupplier(ctx context.Context, supplierID int) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// CreateSupplierInput captures the fields a new supplier requires.
type CreateSupplierInput struct {
	Name    string `validate:"required"`
	Contact string
	Phone   string
	Email   string `validate:"omitempty,email"`
}

// UpdateSupplierInput is a partial update; nil fields keep current values.
type UpdateSupplierInput struct {
	Name    *string
	Contact *string
	Phone   *string
	Email   *string `validate:"omitempty,email"`
}

// NewService wires the supplier directory.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "suppliers repository required")
	}
	return &service{repo: repo, validate: validator.New()}, nil
}

func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*models.Supplier, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid supplier")
	}

	supplier := &models.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier")
	}
	return supplier, nil
}

func (s *service) Update(ctx context.Context, supplierID int, patch UpdateSupplierInput) (*models.Supplier, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid supplier update")
	}

	columns := map[string]any{}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Contact != nil {
		columns["contact"] = *patch.Contact
	}
	if patch.Phone != nil {
		columns["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		columns["email"] = *patch.Email
	}
	if len(columns) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	rows, err := s.repo.Update(ctx, supplierID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update supplier")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no supplier found with ID: %d", supplierID))
	}
	return s.FindSupplier(ctx, supplierID)
}

func (s *service) FindSupplier(ctx context.Context, supplierID int) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, supplierID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no supplier found with ID: %d", supplierID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find supplier")
	}
	return supplier, nil
}

func (s *service) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}
	return suppliers, nil
}
