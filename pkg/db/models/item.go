package models

import "github.com/shopspring/decimal"

// Item is a stocked inventory line. Quantity moves through direct edits
// and order receipts; items are never deleted.
type Item struct {
	ID          int             `gorm:"column:item_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Quantity    int             `gorm:"column:quantity;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Threshold   int             `gorm:"column:threshold;not null"`
}

// TableName keeps the legacy table name.
func (Item) TableName() string {
	return "items"
}

// IsLowStock reports whether the item sits at or below its reorder
// threshold.
func (i Item) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}
