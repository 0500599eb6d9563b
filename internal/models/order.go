// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ItemSnapshot is a denormalized copy of an item captured when it was added
// to an order. Orders embed snapshots by value instead of foreign keys so
// later catalog edits never rewrite order history.
type ItemSnapshot struct {
	ItemID   uint    `json:"itemId"`
	ItemName string  `json:"itemName"`
	Category string  `json:"category"`
	ItemDesc string  `json:"itemDesc"`
	Stock    int     `json:"stock"`
	ItemPic  string  `json:"itemPic"`
	Rating   float64 `json:"rating"`
}

// ItemSnapshots is the serialized snapshot array stored on the order row.
type ItemSnapshots []ItemSnapshot

func (s ItemSnapshots) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(ItemSnapshots{})
	}
	return json.Marshal(s)
}

func (s *ItemSnapshots) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for item snapshots", value)
	}

	return json.Unmarshal(bytes, s)
}

// Contains reports whether the snapshot list already holds the item.
func (s ItemSnapshots) Contains(itemID uint) bool {
	for _, snap := range s {
		if snap.ItemID == itemID {
			return true
		}
	}
	return false
}

type Order struct {
	OrderID      uint          `json:"orderId" gorm:"primaryKey"`
	OrderNumber  string        `json:"orderNumber" gorm:"size:64;not null;uniqueIndex"`
	Status       OrderStatus   `json:"status" gorm:"type:varchar(20);default:'confirmed'"`
	DeliveryDate time.Time     `json:"deliveryDate"`
	Items        ItemSnapshots `json:"items" gorm:"type:jsonb;not null"`
	UserID       uint          `json:"userId" gorm:"not null;index"`
	// Version guards the read-modify-write of the snapshot list. Updates
	// must compare-and-swap on it; a stale writer gets zero rows affected.
	Version int `json:"-" gorm:"not null;default:0"`
	BaseModel

	User User `json:"-" gorm:"foreignKey:UserID"`
}
