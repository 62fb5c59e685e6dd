package models

import (
	"time"

	"github.com/angelmondragon/stockroom/pkg/enums"
)

// PurchaseOrder restocks a single item from a single supplier. Quantity
// and the item/supplier references are immutable after creation; only
// the status moves.
type PurchaseOrder struct {
	ID         int               `gorm:"column:order_id;primaryKey;autoIncrement"`
	SupplierID int               `gorm:"column:supplier_id;not null"`
	ItemID     int               `gorm:"column:item_id;not null"`
	Quantity   int               `gorm:"column:quantity;not null"`
	OrderDate  time.Time         `gorm:"column:order_date;not null"`
	Status     enums.OrderStatus `gorm:"column:status;not null"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:ID"`
	Item     *Item     `gorm:"foreignKey:ItemID;references:ID"`
}

// TableName keeps the legacy table name.
func (PurchaseOrder) TableName() string {
	return "orders"
}
