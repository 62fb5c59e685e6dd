package shell

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/internal/suppliers"
)

func (s *Shell) supplierMenu(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, "\nSupplier Management")
		fmt.Fprintln(s.out, "1. Add New Supplier")
		fmt.Fprintln(s.out, "2. Update Supplier")
		fmt.Fprintln(s.out, "3. View All Suppliers")
		fmt.Fprintln(s.out, "4. Back to Main Menu")

		choice, err := s.promptInt("Select an option: ")
		if err != nil {
			if err == errInputClosed {
				return
			}
			s.report(ctx, "supplier menu", err)
			continue
		}

		switch choice {
		case 1:
			if err := s.addSupplier(ctx); err != nil {
				s.report(ctx, "add supplier", err)
			}
		case 2:
			if err := s.updateSupplier(ctx); err != nil {
				s.report(ctx, "update supplier", err)
			}
		case 3:
			if err := s.viewAllSuppliers(ctx); err != nil {
				s.report(ctx, "view suppliers", err)
			}
		case 4:
			return
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) addSupplier(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nAdd New Supplier")

	name, err := s.promptLine("Enter supplier name: ")
	if err != nil {
		return err
	}
	contact, err := s.promptLine("Enter contact person: ")
	if err != nil {
		return err
	}
	phone, err := s.promptLine("Enter phone number: ")
	if err != nil {
		return err
	}
	email, err := s.promptLine("Enter email: ")
	if err != nil {
		return err
	}

	supplier, err := s.sups.Create(ctx, suppliers.CreateSupplierInput{
		Name:    name,
		Contact: contact,
		Phone:   phone,
		Email:   email,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Supplier added successfully")
	s.logg.Info(s.logg.WithField(ctx, "supplier_id", supplier.ID), "supplier created")
	return nil
}

func (s *Shell) updateSupplier(ctx context.Context) error {
	if err := s.viewAllSuppliers(ctx); err != nil {
		return err
	}

	supplierID, err := s.promptInt("\nEnter supplier ID to update: ")
	if err != nil {
		return err
	}

	name, err := s.promptOptionalString("Enter new name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	contact, err := s.promptOptionalString("Enter new contact person (leave blank to keep current): ")
	if err != nil {
		return err
	}
	phone, err := s.promptOptionalString("Enter new phone number (leave blank to keep current): ")
	if err != nil {
		return err
	}
	email, err := s.promptOptionalString("Enter new email (leave blank to keep current): ")
	if err != nil {
		return err
	}

	if _, err := s.sups.Update(ctx, supplierID, suppliers.UpdateSupplierInput{
		Name:    name,
		Contact: contact,
		Phone:   phone,
		Email:   email,
	}); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Supplier updated successfully")
	s.logg.Info(s.logg.WithField(ctx, "supplier_id", supplierID), "supplier updated")
	return nil
}

func (s *Shell) viewAllSuppliers(ctx context.Context) error {
	sups, err := s.sups.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nSupplier List:")
	s.renderSuppliers(sups)
	return nil
}
