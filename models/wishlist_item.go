package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistItem is one product entry within a Wishlist. Product name,
// description and price are a denormalized snapshot of the external product
// at the time the item was added.
type WishlistItem struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	WishlistID         uint            `json:"wishlist_id" gorm:"not null;index"`
	ProductID          int64           `json:"product_id" gorm:"not null"`
	ProductName        string          `json:"product_name" gorm:"size:255;not null"`
	ProductDescription string          `json:"product_description" gorm:"size:255;not null"`
	ProductPrice       decimal.Decimal `json:"product_price" gorm:"type:numeric(12,2);not null"`
	CreatedAt          time.Time       `json:"created_at"`
	LastUpdatedAt      time.Time       `json:"last_updated_at" gorm:"autoUpdateTime"`
}
