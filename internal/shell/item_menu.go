package shell

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/internal/stock"
)

func (s *Shell) itemMenu(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, "\nItem Management")
		fmt.Fprintln(s.out, "1. Add New Item")
		fmt.Fprintln(s.out, "2. Update Item")
		fmt.Fprintln(s.out, "3. View All Items")
		fmt.Fprintln(s.out, "4. Check Stock Levels")
		fmt.Fprintln(s.out, "5. Back to Main Menu")

		choice, err := s.promptInt("Select an option: ")
		if err != nil {
			if err == errInputClosed {
				return
			}
			s.report(ctx, "item menu", err)
			continue
		}

		switch choice {
		case 1:
			if err := s.addItem(ctx); err != nil {
				s.report(ctx, "add item", err)
			}
		case 2:
			if err := s.updateItem(ctx); err != nil {
				s.report(ctx, "update item", err)
			}
		case 3:
			if err := s.viewAllItems(ctx); err != nil {
				s.report(ctx, "view items", err)
			}
		case 4:
			if err := s.checkStockLevels(ctx); err != nil {
				s.report(ctx, "check stock levels", err)
			}
		case 5:
			return
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) addItem(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nAdd New Item")

	name, err := s.promptLine("Enter item name: ")
	if err != nil {
		return err
	}
	description, err := s.promptLine("Enter description: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt("Enter initial quantity: ")
	if err != nil {
		return err
	}
	price, err := s.promptDecimal("Enter price: ")
	if err != nil {
		return err
	}
	threshold, err := s.promptInt("Enter threshold for alerts: ")
	if err != nil {
		return err
	}

	item, err := s.stock.CreateItem(ctx, stock.CreateItemInput{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Threshold:   threshold,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Item added successfully")
	s.logg.Info(s.logg.WithField(ctx, "item_id", item.ID), "item created")
	return nil
}

func (s *Shell) updateItem(ctx context.Context) error {
	if err := s.viewAllItems(ctx); err != nil {
		return err
	}

	itemID, err := s.promptInt("\nEnter item ID to update: ")
	if err != nil {
		return err
	}

	name, err := s.promptOptionalString("Enter new name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	description, err := s.promptOptionalString("Enter new description (leave blank to keep current): ")
	if err != nil {
		return err
	}
	quantity, err := s.promptOptionalInt("Enter new quantity (leave blank to keep current): ")
	if err != nil {
		return err
	}
	price, err := s.promptOptionalDecimal("Enter new price (leave blank to keep current): ")
	if err != nil {
		return err
	}
	threshold, err := s.promptOptionalInt("Enter new threshold (leave blank to keep current): ")
	if err != nil {
		return err
	}

	if _, err := s.stock.UpdateItem(ctx, itemID, stock.UpdateItemInput{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Threshold:   threshold,
	}); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Item updated successfully")
	s.logg.Info(s.logg.WithField(ctx, "item_id", itemID), "item updated")
	return nil
}

func (s *Shell) viewAllItems(ctx context.Context) error {
	items, err := s.stock.ListItems(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nItem List:")
	s.renderItems(items)
	return nil
}

func (s *Shell) checkStockLevels(ctx context.Context) error {
	items, err := s.stock.ListLowStockItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "\nAll items have sufficient stock")
		return nil
	}
	fmt.Fprintln(s.out, "\nLow Stock Items:")
	s.renderItems(items)
	return nil
}
