package models

import (
	"github.com/shopspring/decimal"

	"github.com/devops-squad/wishlists/utils"
)

// WishlistRequest represents the wishlist creation/update request body.
// Identity and timestamps are never taken from the client; the route layer
// re-asserts them from the path.
type WishlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// Apply copies the client-controlled fields onto a Wishlist record
func (r *WishlistRequest) Apply(w *Wishlist) {
	w.Name = r.Name
	w.Username = r.Username
	w.Description = r.Description
	w.IsPublic = r.IsPublic
	if w.WishlistItems == nil {
		w.WishlistItems = []WishlistItem{}
	}
}

// WishlistItemRequest represents the item creation/update request body.
// ProductID is a pointer so a present-but-zero id still passes the
// required check.
type WishlistItemRequest struct {
	ProductID          *int64          `json:"product_id" binding:"required"`
	ProductName        string          `json:"product_name" binding:"required"`
	ProductDescription string          `json:"product_description" binding:"required"`
	ProductPrice       decimal.Decimal `json:"product_price"`
}

// Validate enforces the constraints the binding tags cannot express.
// Returns nil when the request is valid.
func (r *WishlistItemRequest) Validate() utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors
	if !r.ProductPrice.IsPositive() {
		errs = append(errs, utils.FieldValidationError{
			Field:   "product_price",
			Message: "must be a positive decimal",
		})
	}
	return errs
}

// Apply copies the client-controlled fields onto a WishlistItem record
func (r *WishlistItemRequest) Apply(item *WishlistItem) {
	item.ProductID = *r.ProductID
	item.ProductName = r.ProductName
	item.ProductDescription = r.ProductDescription
	item.ProductPrice = r.ProductPrice
}
