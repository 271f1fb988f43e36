package models

import (
	"time"
)

// Wishlist is a named, user-owned collection of product entries. The
// (username, name) pair is unique so a user cannot hold two wishlists with
// the same name.
type Wishlist struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:255;not null;uniqueIndex:idx_wishlists_owner_name"`
	Description   string         `json:"description" gorm:"size:255"`
	Username      string         `json:"username" gorm:"size:255;not null;uniqueIndex:idx_wishlists_owner_name"`
	IsPublic      bool           `json:"is_public" gorm:"not null;default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	LastUpdatedAt time.Time      `json:"last_updated_at" gorm:"autoUpdateTime"`
	WishlistItems []WishlistItem `json:"wishlist_items" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}
