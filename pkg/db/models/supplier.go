package models

// Supplier is a vendor that purchase orders reference.
type Supplier struct {
	ID      int    `gorm:"column:supplier_id;primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;not null"`
	Contact string `gorm:"column:contact"`
	Phone   string `gorm:"column:phone"`
	Email   string `gorm:"column:email"`
}

// TableName keeps the legacy table name.
func (Supplier) TableName() string {
	return "suppliers"
}
