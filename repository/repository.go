package repository

import (
	"context"

	"github.com/devops-squad/wishlists/models"
)

// WishlistRepository defines the interface for wishlist data operations.
// Find-style methods return (nil, nil) when nothing matches; absence is not
// an error.
type WishlistRepository interface {
	Create(ctx context.Context, wishlist *models.Wishlist) error
	Update(ctx context.Context, wishlist *models.Wishlist) error
	Delete(ctx context.Context, id uint) error
	Find(ctx context.Context, id uint) (*models.Wishlist, error)
	All(ctx context.Context) ([]models.Wishlist, error)
	FindByName(ctx context.Context, name string) ([]models.Wishlist, error)
	FindForUser(ctx context.Context, username string) ([]models.Wishlist, error)
}

// WishlistItemRepository defines the interface for wishlist item data operations
type WishlistItemRepository interface {
	Create(ctx context.Context, item *models.WishlistItem) error
	Update(ctx context.Context, item *models.WishlistItem) error
	Delete(ctx context.Context, id uint) error
	Find(ctx context.Context, id uint) (*models.WishlistItem, error)
	All(ctx context.Context) ([]models.WishlistItem, error)
	FindByProductName(ctx context.Context, name string, wishlistID uint) ([]models.WishlistItem, error)
}
