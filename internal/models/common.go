// internal/models/common.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PrincipalType discriminates the kinds of authenticable identities. The
// unified schema has a single kind; the login chain stays ordered so a
// split (customer/seller) deployment can register more kinds.
type PrincipalType string

const (
	PrincipalTypeUser PrincipalType = "user"
)
