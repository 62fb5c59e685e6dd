package shell

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/internal/orders"
)

func (s *Shell) orderMenu(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, "\nOrder Management")
		fmt.Fprintln(s.out, "1. Create New Order")
		fmt.Fprintln(s.out, "2. Update Order Status")
		fmt.Fprintln(s.out, "3. View All Orders")
		fmt.Fprintln(s.out, "4. View Orders by Status")
		fmt.Fprintln(s.out, "5. Back to Main Menu")

		choice, err := s.promptInt("Select an option: ")
		if err != nil {
			if err == errInputClosed {
				return
			}
			s.report(ctx, "order menu", err)
			continue
		}

		switch choice {
		case 1:
			if err := s.createOrder(ctx); err != nil {
				s.report(ctx, "create order", err)
			}
		case 2:
			if err := s.updateOrderStatus(ctx); err != nil {
				s.report(ctx, "update order status", err)
			}
		case 3:
			if err := s.viewAllOrders(ctx); err != nil {
				s.report(ctx, "view orders", err)
			}
		case 4:
			if err := s.viewOrdersByStatus(ctx); err != nil {
				s.report(ctx, "view orders by status", err)
			}
		case 5:
			return
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) createOrder(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nCreate New Order")

	if err := s.viewAllItems(ctx); err != nil {
		return err
	}
	itemID, err := s.promptInt("Enter item ID to order: ")
	if err != nil {
		return err
	}

	if err := s.viewAllSuppliers(ctx); err != nil {
		return err
	}
	supplierID, err := s.promptInt("Enter supplier ID: ")
	if err != nil {
		return err
	}

	quantity, err := s.promptInt("Enter quantity to order: ")
	if err != nil {
		return err
	}
	status, err := s.promptOrderStatus("Enter order status (Pending/Shipped/Received): ")
	if err != nil {
		return err
	}

	order, err := s.ords.Create(ctx, orders.CreateOrderInput{
		ItemID:     itemID,
		SupplierID: supplierID,
		Quantity:   quantity,
		Status:     status,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Order created successfully")
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"order_id": order.ID, "status": order.Status}), "order created")
	return nil
}

func (s *Shell) updateOrderStatus(ctx context.Context) error {
	if err := s.viewAllOrders(ctx); err != nil {
		return err
	}

	orderID, err := s.promptInt("\nEnter order ID to update: ")
	if err != nil {
		return err
	}
	status, err := s.promptOrderStatus("Enter new status (Pending/Shipped/Received): ")
	if err != nil {
		return err
	}

	if _, err := s.ords.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Order status updated successfully")
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"order_id": orderID, "status": status}), "order status updated")
	return nil
}

func (s *Shell) viewAllOrders(ctx context.Context) error {
	ords, err := s.ords.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nOrder List:")
	s.renderOrders(ords)
	return nil
}

func (s *Shell) viewOrdersByStatus(ctx context.Context) error {
	status, err := s.promptOrderStatus("\nEnter status to filter (Pending/Shipped/Received): ")
	if err != nil {
		return err
	}

	ords, err := s.ords.ListByStatus(ctx, status)
	if err != nil {
		return err
	}
	if len(ords) == 0 {
		fmt.Fprintf(s.out, "No orders found with status: %s\n", status)
		return nil
	}

	fmt.Fprintf(s.out, "\nOrders with Status: %s\n", status)
	s.renderOrders(ords)
	return nil
}
