package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops-squad/wishlists/models"
)

func TestWishlistJSONShape(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	wishlist := models.Wishlist{
		ID:            4,
		Name:          "Sports",
		Description:   "gear",
		Username:      "u1",
		IsPublic:      true,
		CreatedAt:     now,
		LastUpdatedAt: now,
		WishlistItems: []models.WishlistItem{
			{
				ID:                 9,
				WishlistID:         4,
				ProductID:          77,
				ProductName:        "ball",
				ProductDescription: "leather",
				ProductPrice:       decimal.RequireFromString("19.99"),
				CreatedAt:          now,
				LastUpdatedAt:      now,
			},
		},
	}

	raw, err := json.Marshal(wishlist)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))

	for _, key := range []string{
		"id", "name", "description", "username", "is_public",
		"created_at", "last_updated_at", "wishlist_items",
	} {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, true, data["is_public"])
	assert.Equal(t, "2024-03-01T12:00:00Z", data["created_at"])

	items := data["wishlist_items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	for _, key := range []string{
		"id", "wishlist_id", "product_id", "product_name",
		"product_description", "product_price", "created_at", "last_updated_at",
	} {
		assert.Contains(t, item, key)
	}
	assert.Equal(t, float64(4), item["wishlist_id"])
	assert.Equal(t, "19.99", item["product_price"])
}

func TestWishlistRequestApply(t *testing.T) {
	req := models.WishlistRequest{
		Name:        "Sports",
		Username:    "u1",
		Description: "gear",
		IsPublic:    true,
	}

	var wishlist models.Wishlist
	req.Apply(&wishlist)

	assert.Equal(t, "Sports", wishlist.Name)
	assert.Equal(t, "u1", wishlist.Username)
	assert.Equal(t, "gear", wishlist.Description)
	assert.True(t, wishlist.IsPublic)
	// Server-controlled fields stay untouched
	assert.Zero(t, wishlist.ID)
	assert.True(t, wishlist.CreatedAt.IsZero())
	assert.NotNil(t, wishlist.WishlistItems)
	assert.Empty(t, wishlist.WishlistItems)
}

func TestWishlistItemRequestApply(t *testing.T) {
	productID := int64(0)
	req := models.WishlistItemRequest{
		ProductID:          &productID,
		ProductName:        "ball",
		ProductDescription: "leather",
		ProductPrice:       decimal.RequireFromString("19.99"),
	}
	require.Nil(t, req.Validate())

	item := models.WishlistItem{ID: 3, WishlistID: 8}
	req.Apply(&item)

	assert.Equal(t, int64(0), item.ProductID)
	assert.Equal(t, "ball", item.ProductName)
	assert.True(t, decimal.RequireFromString("19.99").Equal(item.ProductPrice))
	// Apply never touches identity
	assert.Equal(t, uint(3), item.ID)
	assert.Equal(t, uint(8), item.WishlistID)
}

func TestWishlistItemRequestValidatePrice(t *testing.T) {
	productID := int64(7)
	req := models.WishlistItemRequest{
		ProductID:          &productID,
		ProductName:        "ball",
		ProductDescription: "leather",
	}

	// Zero (absent) price
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "product_price", errs[0].Field)

	// Negative price
	req.ProductPrice = decimal.RequireFromString("-2.50")
	errs = req.Validate()
	require.Len(t, errs, 1)

	req.ProductPrice = decimal.RequireFromString("0.01")
	assert.Nil(t, req.Validate())
}
