package shell

import (
	"fmt"
	"text/tabwriter"

	"github.com/angelmondragon/stockroom/pkg/db/models"
)

const dateLayout = "2006-01-02"

func (s *Shell) renderItems(items []models.Item) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tDescription\tQty\tPrice\tThreshold")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%d\n",
			item.ID, item.Name, item.Description, item.Quantity, item.Price.StringFixed(2), item.Threshold)
	}
	w.Flush()
}

func (s *Shell) renderSuppliers(sups []models.Supplier) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tContact\tPhone\tEmail")
	for _, sup := range sups {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", sup.ID, sup.Name, sup.Contact, sup.Phone, sup.Email)
	}
	w.Flush()
}

func (s *Shell) renderOrders(ords []models.PurchaseOrder) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tSupplier\tItem\tQty\tStatus")
	for _, ord := range ords {
		supplierName, itemName := "", ""
		if ord.Supplier != nil {
			supplierName = ord.Supplier.Name
		}
		if ord.Item != nil {
			itemName = ord.Item.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			ord.ID, ord.OrderDate.Format(dateLayout), supplierName, itemName, ord.Quantity, ord.Status)
	}
	w.Flush()
}

func (s *Shell) renderAlerts(alerts []models.Alert) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tMessage\tItem\tStatus")
	for _, alert := range alerts {
		itemName := ""
		if alert.Item != nil {
			itemName = alert.Item.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			alert.ID, alert.AlertDate.Format(dateLayout), alert.Message, itemName, alert.Status)
	}
	w.Flush()
}
