// internal/models/item.go
package models

import (
	"github.com/lib/pq"
)

type Item struct {
	ItemID   uint           `json:"itemId" gorm:"primaryKey"`
	ItemName string         `json:"itemName" gorm:"size:255;not null"`
	Category string         `json:"category" gorm:"size:100;not null;index"`
	ItemDesc string         `json:"itemDesc" gorm:"type:text;not null"`
	Stock    int            `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	ItemPic  string         `json:"itemPic" gorm:"size:512;not null"`
	Rating   float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Reviews  pq.StringArray `json:"reviews,omitempty" gorm:"type:text[]"`
	BaseModel

	Users []User `json:"-" gorm:"many2many:user_items"`
}

// Snapshot copies the item's current fields into an order-embedded value.
// The copy never changes after capture, whatever happens to the catalog row.
func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ItemID:   i.ItemID,
		ItemName: i.ItemName,
		Category: i.Category,
		ItemDesc: i.ItemDesc,
		Stock:    i.Stock,
		ItemPic:  i.ItemPic,
		Rating:   i.Rating,
	}
}
