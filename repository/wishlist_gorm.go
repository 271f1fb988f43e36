package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devops-squad/wishlists/models"
	"github.com/devops-squad/wishlists/utils"
)

// wishlistGorm implements WishlistRepository on top of a GORM handle
type wishlistGorm struct {
	db *gorm.DB
}

// NewWishlistRepository creates a Postgres-backed WishlistRepository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistGorm{db: db}
}

// Create inserts the wishlist in its own transaction, assigning a fresh
// identity. A unique-index violation on (username, name) comes back as a
// conflict error.
func (r *wishlistGorm) Create(ctx context.Context, wishlist *models.Wishlist) error {
	wishlist.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(wishlist).Error
	})
	if err != nil {
		utils.LogError("Error creating wishlist %q for %q: %v", wishlist.Name, wishlist.Username, err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ConflictError("wishlist with this username and name already exists", err)
		}
		return utils.StorageError("failed to create wishlist", err)
	}
	return nil
}

// Update saves pending mutations on an existing row
func (r *wishlistGorm) Update(ctx context.Context, wishlist *models.Wishlist) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(wishlist).Error
	})
	if err != nil {
		utils.LogError("Error updating wishlist %d: %v", wishlist.ID, err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ConflictError("wishlist with this username and name already exists", err)
		}
		return utils.StorageError("failed to update wishlist", err)
	}
	return nil
}

// Delete removes the wishlist and all of its items
func (r *wishlistGorm) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Wishlist{}, id).Error
	})
	if err != nil {
		utils.LogError("Error deleting wishlist %d: %v", id, err)
		return utils.StorageError("failed to delete wishlist", err)
	}
	return nil
}

// Find returns the wishlist with the given id, items included, or nil when
// no such row exists
func (r *wishlistGorm) Find(ctx context.Context, id uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).Preload("WishlistItems").First(&wishlist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		utils.LogError("Error looking up wishlist %d: %v", id, err)
		return nil, utils.StorageError("failed to look up wishlist", err)
	}
	return &wishlist, nil
}

// All returns every wishlist
func (r *wishlistGorm) All(ctx context.Context) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).Preload("WishlistItems").Find(&wishlists).Error; err != nil {
		utils.LogError("Error listing wishlists: %v", err)
		return nil, utils.StorageError("failed to list wishlists", err)
	}
	return wishlists, nil
}

// FindByName returns all wishlists with an exact-matching name
func (r *wishlistGorm) FindByName(ctx context.Context, name string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	err := r.db.WithContext(ctx).Preload("WishlistItems").Where("name = ?", name).Find(&wishlists).Error
	if err != nil {
		utils.LogError("Error querying wishlists by name %q: %v", name, err)
		return nil, utils.StorageError("failed to query wishlists by name", err)
	}
	return wishlists, nil
}

// FindForUser returns all wishlists owned by the given username
func (r *wishlistGorm) FindForUser(ctx context.Context, username string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	err := r.db.WithContext(ctx).Preload("WishlistItems").Where("username = ?", username).Find(&wishlists).Error
	if err != nil {
		utils.LogError("Error querying wishlists for user %q: %v", username, err)
		return nil, utils.StorageError("failed to query wishlists by username", err)
	}
	return wishlists, nil
}
