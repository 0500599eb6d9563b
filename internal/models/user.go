// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber  string `json:"phoneNumber" gorm:"size:50;not null"`
	Address      string `json:"address" gorm:"size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	BaseModel

	// Items the user has added to their catalog (wishlist-like relation,
	// distinct from orders). Unique per (user, item) pair.
	Items []Item `json:"items,omitempty" gorm:"many2many:user_items"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
