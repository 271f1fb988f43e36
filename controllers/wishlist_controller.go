package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devops-squad/wishlists/models"
	"github.com/devops-squad/wishlists/repository"
	"github.com/devops-squad/wishlists/utils"
)

// WishlistController handles the /wishlists resource
type WishlistController struct {
	wishlists repository.WishlistRepository
}

// NewWishlistController creates a WishlistController over the given repository
func NewWishlistController(wishlists repository.WishlistRepository) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

// List returns all wishlists, optionally filtered by exact name or username.
// A filter that matches nothing is a 404; an unfiltered empty collection is
// an empty 200.
func (ctl *WishlistController) List(c *gin.Context) {
	utils.LogInfo("Request for wishlist list")

	var (
		wishlists []models.Wishlist
		err       error
		filtered  bool
	)
	switch {
	case c.Query("name") != "":
		filtered = true
		wishlists, err = ctl.wishlists.FindByName(c.Request.Context(), c.Query("name"))
	case c.Query("username") != "":
		filtered = true
		wishlists, err = ctl.wishlists.FindForUser(c.Request.Context(), c.Query("username"))
	default:
		wishlists, err = ctl.wishlists.All(c.Request.Context())
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to list wishlists", nil)
		return
	}

	if filtered && len(wishlists) == 0 {
		utils.NotFound(c, "No wishlists found matching the given filter")
		return
	}

	if wishlists == nil {
		wishlists = []models.Wishlist{}
	}
	for i := range wishlists {
		ensureItems(&wishlists[i])
	}
	c.JSON(http.StatusOK, wishlists)
}

// Create creates a wishlist from the request body
func (ctl *WishlistController) Create(c *gin.Context) {
	utils.LogInfo("Request to create a wishlist")

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid wishlist body: %v", err)
		utils.BadRequest(c, "Invalid wishlist body", utils.FieldErrorsFromBinding(err))
		return
	}

	if conflict, err := ctl.ownerNameTaken(c, req.Username, req.Name, 0); err != nil {
		utils.InternalServerError(c, "Failed to check for duplicate wishlist", nil)
		return
	} else if conflict {
		utils.Conflict(c, fmt.Sprintf("Wishlist %q already exists for user %q", req.Name, req.Username))
		return
	}

	var wishlist models.Wishlist
	req.Apply(&wishlist)

	if err := ctl.wishlists.Create(c.Request.Context(), &wishlist); err != nil {
		if utils.IsConflict(err) {
			utils.Conflict(c, fmt.Sprintf("Wishlist %q already exists for user %q", req.Name, req.Username))
			return
		}
		utils.InternalServerError(c, "Failed to create wishlist", nil)
		return
	}

	utils.LogInfo("Wishlist %d created for user %q", wishlist.ID, wishlist.Username)
	ensureItems(&wishlist)
	utils.Created(c, fmt.Sprintf("/wishlists/%d", wishlist.ID), wishlist)
}

// Get returns a single wishlist by id
func (ctl *WishlistController) Get(c *gin.Context) {
	wishlist, ok := ctl.findOr404(c)
	if !ok {
		return
	}
	ensureItems(wishlist)
	c.JSON(http.StatusOK, wishlist)
}

// Update replaces the client-controlled fields of an existing wishlist
func (ctl *WishlistController) Update(c *gin.Context) {
	wishlist, ok := ctl.findOr404(c)
	if !ok {
		return
	}

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid wishlist body: %v", err)
		utils.BadRequest(c, "Invalid wishlist body", utils.FieldErrorsFromBinding(err))
		return
	}

	if conflict, err := ctl.ownerNameTaken(c, req.Username, req.Name, wishlist.ID); err != nil {
		utils.InternalServerError(c, "Failed to check for duplicate wishlist", nil)
		return
	} else if conflict {
		utils.Conflict(c, fmt.Sprintf("Wishlist %q already exists for user %q", req.Name, req.Username))
		return
	}

	req.Apply(wishlist)
	if err := ctl.wishlists.Update(c.Request.Context(), wishlist); err != nil {
		if utils.IsConflict(err) {
			utils.Conflict(c, fmt.Sprintf("Wishlist %q already exists for user %q", req.Name, req.Username))
			return
		}
		utils.InternalServerError(c, "Failed to update wishlist", nil)
		return
	}

	utils.LogInfo("Wishlist %d updated", wishlist.ID)
	ensureItems(wishlist)
	c.JSON(http.StatusOK, wishlist)
}

// Delete removes a wishlist and its items. Deleting an absent id is still a
// 204 so the operation stays idempotent.
func (ctl *WishlistController) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NoContent(c)
		return
	}
	utils.LogInfo("Request to delete wishlist %d", id)

	wishlist, err := ctl.wishlists.Find(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerError(c, "Failed to look up wishlist", nil)
		return
	}
	if wishlist == nil {
		utils.NoContent(c)
		return
	}

	if err := ctl.wishlists.Delete(c.Request.Context(), id); err != nil {
		utils.InternalServerError(c, "Failed to delete wishlist", nil)
		return
	}
	utils.LogInfo("Wishlist %d deleted", id)
	utils.NoContent(c)
}

// Publish marks a wishlist as publicly visible
func (ctl *WishlistController) Publish(c *gin.Context) {
	ctl.setVisibility(c, true)
}

// Unpublish marks a wishlist as private
func (ctl *WishlistController) Unpublish(c *gin.Context) {
	ctl.setVisibility(c, false)
}

// setVisibility toggles is_public and persists. Repeated calls converge on
// the same representation.
func (ctl *WishlistController) setVisibility(c *gin.Context, public bool) {
	wishlist, ok := ctl.findOr404(c)
	if !ok {
		return
	}

	// Skip the write when the flag already holds the desired value so
	// repeated calls return the same representation.
	if wishlist.IsPublic != public {
		wishlist.IsPublic = public
		if err := ctl.wishlists.Update(c.Request.Context(), wishlist); err != nil {
			utils.InternalServerError(c, "Failed to update wishlist", nil)
			return
		}
	}

	utils.LogInfo("Wishlist %d is_public set to %t", wishlist.ID, public)
	ensureItems(wishlist)
	c.JSON(http.StatusOK, wishlist)
}

// findOr404 resolves the :id path parameter to a wishlist, writing the 404
// response itself when the id is malformed or unknown
func (ctl *WishlistController) findOr404(c *gin.Context) (*models.Wishlist, bool) {
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

// ownerNameTaken reports whether another wishlist (id != excludeID) already
// holds the (username, name) pair. The database unique index remains the
// authority under concurrent creates; this check just gives a clean 409 on
// the common path.
func (ctl *WishlistController) ownerNameTaken(c *gin.Context, username, name string, excludeID uint) (bool, error) {
	matches, err := ctl.wishlists.FindByName(c.Request.Context(), name)
	if err != nil {
		return false, err
	}
	for _, match := range matches {
		if match.Username == username && match.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// ensureItems keeps the items collection serializing as [] instead of null
func ensureItems(w *models.Wishlist) {
	if w.WishlistItems == nil {
		w.WishlistItems = []models.WishlistItem{}
	}
}

// parseID parses a decimal path parameter into a record id
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
