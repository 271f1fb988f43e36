package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devops-squad/wishlists/models"
	"github.com/devops-squad/wishlists/repository"
	"github.com/devops-squad/wishlists/utils"
)

// WishlistItemController handles the nested /wishlists/:id/items resource
type WishlistItemController struct {
	wishlists repository.WishlistRepository
	items     repository.WishlistItemRepository
}

// NewWishlistItemController creates a WishlistItemController over the given
// repositories
func NewWishlistItemController(wishlists repository.WishlistRepository, items repository.WishlistItemRepository) *WishlistItemController {
	return &WishlistItemController{wishlists: wishlists, items: items}
}

// List returns the items of one wishlist, optionally filtered by exact
// product name. A filter that matches nothing is a 404.
func (ctl *WishlistItemController) List(c *gin.Context) {
	wishlist, ok := ctl.parentOr404(c)
	if !ok {
		return
	}
	utils.LogInfo("Request for items of wishlist %d", wishlist.ID)

	if name := c.Query("product_name"); name != "" {
		items, err := ctl.items.FindByProductName(c.Request.Context(), name, wishlist.ID)
		if err != nil {
			utils.InternalServerError(c, "Failed to query wishlist items", nil)
			return
		}
		if len(items) == 0 {
			utils.NotFound(c, fmt.Sprintf("No items with product name %q in wishlist '%d'", name, wishlist.ID))
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items := wishlist.WishlistItems
	if items == nil {
		items = []models.WishlistItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Create adds an item to a wishlist
func (ctl *WishlistItemController) Create(c *gin.Context) {
	wishlist, ok := ctl.parentOr404(c)
	if !ok {
		return
	}
	utils.LogInfo("Request to add an item to wishlist %d", wishlist.ID)

	req, ok := bindItem(c)
	if !ok {
		return
	}

	var item models.WishlistItem
	req.Apply(&item)
	// The parent comes from the path, never from the body
	item.WishlistID = wishlist.ID

	if err := ctl.items.Create(c.Request.Context(), &item); err != nil {
		utils.InternalServerError(c, "Failed to create wishlist item", nil)
		return
	}

	utils.LogInfo("Item %d created in wishlist %d", item.ID, wishlist.ID)
	utils.Created(c, fmt.Sprintf("/wishlists/%d/items/%d", wishlist.ID, item.ID), item)
}

// Get returns a single item. An item that exists under a different wishlist
// is indistinguishable from a missing one.
func (ctl *WishlistItemController) Get(c *gin.Context) {
	item, ok := ctl.findOr404(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update replaces the client-controlled fields of an existing item
func (ctl *WishlistItemController) Update(c *gin.Context) {
	item, ok := ctl.findOr404(c)
	if !ok {
		return
	}

	req, ok := bindItem(c)
	if !ok {
		return
	}

	id, wishlistID := item.ID, item.WishlistID
	req.Apply(item)
	// Re-assert server-controlled identity after binding
	item.ID = id
	item.WishlistID = wishlistID

	if err := ctl.items.Update(c.Request.Context(), item); err != nil {
		utils.InternalServerError(c, "Failed to update wishlist item", nil)
		return
	}

	utils.LogInfo("Item %d updated in wishlist %d", item.ID, item.WishlistID)
	c.JSON(http.StatusOK, item)
}

// Delete removes an item. Absent ids and wrong-parent ids are already the
// desired end state, so both return 204.
func (ctl *WishlistItemController) Delete(c *gin.Context) {
	wishlistID, errW := parseID(c.Param("id"))
	itemID, errI := parseID(c.Param("item_id"))
	if errW != nil || errI != nil {
		utils.NoContent(c)
		return
	}
	utils.LogInfo("Request to delete item %d from wishlist %d", itemID, wishlistID)

	item, err := ctl.items.Find(c.Request.Context(), itemID)
	if err != nil {
		utils.InternalServerError(c, "Failed to look up wishlist item", nil)
		return
	}
	if item == nil || item.WishlistID != wishlistID {
		utils.NoContent(c)
		return
	}

	if err := ctl.items.Delete(c.Request.Context(), itemID); err != nil {
		utils.InternalServerError(c, "Failed to delete wishlist item", nil)
		return
	}
	utils.LogInfo("Item %d deleted from wishlist %d", itemID, wishlistID)
	utils.NoContent(c)
}

// parentOr404 resolves the :id path parameter to the parent wishlist
func (ctl *WishlistItemController) parentOr404(c *gin.Context) (*models.Wishlist, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("Wishlist with id '%s' was not found.", c.Param("id")))
		return nil, false
	}

	wishlist, err := ctl.wishlists.Find(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerError(c, "Failed to look up wishlist", nil)
		return nil, false
	}
	if wishlist == nil {
		utils.NotFound(c, fmt.Sprintf("Wishlist with id '%d' was not found.", id))
		return nil, false
	}
	return wishlist, true
}

// findOr404 resolves both path parameters to an item, enforcing that the
// item actually belongs to the addressed wishlist
func (ctl *WishlistItemController) findOr404(c *gin.Context) (*models.WishlistItem, bool) {
	wishlist, ok := ctl.parentOr404(c)
	if !ok {
		return nil, false
	}

	itemID, err := parseID(c.Param("item_id"))
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("Item with id '%s' was not found in wishlist '%d'.", c.Param("item_id"), wishlist.ID))
		return nil, false
	}

	item, err := ctl.items.Find(c.Request.Context(), itemID)
	if err != nil {
		utils.InternalServerError(c, "Failed to look up wishlist item", nil)
		return nil, false
	}
	if item == nil || item.WishlistID != wishlist.ID {
		utils.NotFound(c, fmt.Sprintf("Item with id '%d' was not found in wishlist '%d'.", itemID, wishlist.ID))
		return nil, false
	}
	return item, true
}

// bindItem binds and validates an item request body, writing the 400
// response itself on failure
func bindItem(c *gin.Context) (*models.WishlistItemRequest, bool) {
	var req models.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid item body: %v", err)
		utils.BadRequest(c, "Invalid wishlist item body", utils.FieldErrorsFromBinding(err))
		return nil, false
	}
	if errs := req.Validate(); errs != nil {
		utils.LogError("Invalid item body: %v", errs)
		utils.BadRequest(c, "Invalid wishlist item body", errs)
		return nil, false
	}
	return &req, true
}
