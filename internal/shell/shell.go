package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/angelmondragon/stockroom/internal/alerts"
	"github.com/angelmondragon/stockroom/internal/orders"
	"github.com/angelmondragon/stockroom/internal/stock"
	"github.com/angelmondragon/stockroom/internal/suppliers"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/angelmondragon/stockroom/pkg/logger"
)

// Shell drives the synchronous operator menu. It is the only caller of
// the domain services and the boundary where failures stop: an operation
// error is logged, printed, and the menu continues.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	logg  *logger.Logger
	stock stock.Service
	sups  suppliers.Service
	ords  orders.Service
	alrts alerts.Service
}

// Params bundles the shell dependencies.
type Params struct {
	In        io.Reader
	Out       io.Writer
	Logger    *logger.Logger
	Stock     stock.Service
	Suppliers suppliers.Service
	Orders    orders.Service
	Alerts    alerts.Service
}

// New builds the interactive shell.
func New(params Params) (*Shell, error) {
	if params.In == nil || params.Out == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shell requires input and output streams")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shell requires a logger")
	}
	if params.Stock == nil || params.Suppliers == nil || params.Orders == nil || params.Alerts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shell requires all domain services")
	}
	return &Shell{
		in:    bufio.NewScanner(params.In),
		out:   params.Out,
		logg:  params.Logger,
		stock: params.Stock,
		sups:  params.Suppliers,
		ords:  params.Orders,
		alrts: params.Alerts,
	}, nil
}

// Run loops on the main menu until the operator exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\nInventory Management System")
		fmt.Fprintln(s.out, "1. Item Management")
		fmt.Fprintln(s.out, "2. Supplier Management")
		fmt.Fprintln(s.out, "3. Order Management")
		fmt.Fprintln(s.out, "4. View Alerts")
		fmt.Fprintln(s.out, "5. Exit")

		choice, err := s.promptInt("Select an option: ")
		if err != nil {
			if err == errInputClosed {
				return nil
			}
			s.report(ctx, "main menu", err)
			continue
		}

		switch choice {
		case 1:
			s.itemMenu(ctx)
		case 2:
			s.supplierMenu(ctx)
		case 3:
			s.orderMenu(ctx)
		case 4:
			s.viewAlerts(ctx)
		case 5:
			s.logg.Info(ctx, "operator exited")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

// report is the operation error boundary: log the failure, print an
// operator-facing message, return to the enclosing menu.
func (s *Shell) report(ctx context.Context, operation string, err error) {
	ctx = s.logg.WithOperation(ctx, operation)

	if typed := pkgerrors.As(err); typed != nil {
		meta := pkgerrors.MetadataFor(typed.Code())
		msg := meta.PublicMessage
		if meta.DetailsAllowed {
			msg = typed.Message()
		}
		fmt.Fprintf(s.out, "Error: %s\n", msg)
		s.logg.Warn(s.logg.WithField(ctx, "code", string(typed.Code())), typed.Message())
		return
	}

	fmt.Fprintln(s.out, "Error: internal error")
	s.logg.Error(ctx, "operation failed", err)
}
