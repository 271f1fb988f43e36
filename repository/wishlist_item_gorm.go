package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devops-squad/wishlists/models"
	"github.com/devops-squad/wishlists/utils"
)

// wishlistItemGorm implements WishlistItemRepository on top of a GORM handle
type wishlistItemGorm struct {
	db *gorm.DB
}

// NewWishlistItemRepository creates a Postgres-backed WishlistItemRepository
func NewWishlistItemRepository(db *gorm.DB) WishlistItemRepository {
	return &wishlistItemGorm{db: db}
}

// Create inserts the item in its own transaction, assigning a fresh identity
func (r *wishlistItemGorm) Create(ctx context.Context, item *models.WishlistItem) error {
	item.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
	if err != nil {
		utils.LogError("Error creating item %q in wishlist %d: %v", item.ProductName, item.WishlistID, err)
		return utils.StorageError("failed to create wishlist item", err)
	}
	return nil
}

// Update saves pending mutations on an existing row
func (r *wishlistItemGorm) Update(ctx context.Context, item *models.WishlistItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(item).Error
	})
	if err != nil {
		utils.LogError("Error updating item %d: %v", item.ID, err)
		return utils.StorageError("failed to update wishlist item", err)
	}
	return nil
}

// Delete removes the item
func (r *wishlistItemGorm) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.WishlistItem{}, id).Error
	})
	if err != nil {
		utils.LogError("Error deleting item %d: %v", id, err)
		return utils.StorageError("failed to delete wishlist item", err)
	}
	return nil
}

// Find returns the item with the given id, or nil when no such row exists
func (r *wishlistItemGorm) Find(ctx context.Context, id uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		utils.LogError("Error looking up item %d: %v", id, err)
		return nil, utils.StorageError("failed to look up wishlist item", err)
	}
	return &item, nil
}

// All returns every wishlist item across all wishlists
func (r *wishlistItemGorm) All(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		utils.LogError("Error listing items: %v", err)
		return nil, utils.StorageError("failed to list wishlist items", err)
	}
	return items, nil
}

// FindByProductName returns the items of one wishlist with an exact-matching
// product name
func (r *wishlistItemGorm) FindByProductName(ctx context.Context, name string, wishlistID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Where("product_name = ? AND wishlist_id = ?", name, wishlistID).
		Find(&items).Error
	if err != nil {
		utils.LogError("Error querying items by product name %q in wishlist %d: %v", name, wishlistID, err)
		return nil, utils.StorageError("failed to query wishlist items by product name", err)
	}
	return items, nil
}
