package models

import (
	"time"

	"github.com/angelmondragon/stockroom/pkg/enums"
)

// Alert is a low-stock notification. Created only by the low-stock rule
// and mutated only by manual resolution; never deleted.
type Alert struct {
	ID        int               `gorm:"column:alert_id;primaryKey;autoIncrement"`
	ItemID    int               `gorm:"column:item_id;not null"`
	Message   string            `gorm:"column:message;not null"`
	AlertDate time.Time         `gorm:"column:alert_date;not null"`
	Status    enums.AlertStatus `gorm:"column:status;not null"`

	Item *Item `gorm:"foreignKey:ItemID;references:ID"`
}

// TableName keeps the legacy table name.
func (Alert) TableName() string {
	return "alerts"
}
