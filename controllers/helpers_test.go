package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devops-squad/wishlists/controllers"
	"github.com/devops-squad/wishlists/models"
	"github.com/devops-squad/wishlists/routes"
	"github.com/devops-squad/wishlists/utils"
)

// fakeStore is an in-memory stand-in for the Postgres repositories so the
// handlers can be exercised without a database. It mirrors the storage
// contract: fresh identities on create, timestamp maintenance, the
// (username, name) unique index, and cascading wishlist deletes.
type fakeStore struct {
	mu        sync.Mutex
	nextID    uint
	wishlists map[uint]models.Wishlist
	items     map[uint]models.WishlistItem
	forcedErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:    1,
		wishlists: make(map[uint]models.Wishlist),
		items:     make(map[uint]models.WishlistItem),
	}
}

func (s *fakeStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *fakeStore) itemsOf(wishlistID uint) []models.WishlistItem {
	result := []models.WishlistItem{}
	for _, item := range s.items {
		if item.WishlistID == wishlistID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type fakeWishlistRepo struct{ store *fakeStore }

func (f *fakeWishlistRepo) Create(_ context.Context, w *models.Wishlist) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.forcedErr != nil {
		return f.store.forcedErr
	}
	for _, existing := range f.store.wishlists {
		if existing.Username == w.Username && existing.Name == w.Name {
			return utils.ConflictError("wishlist with this username and name already exists", nil)
		}
	}
	w.ID = f.store.allocID()
	now := time.Now().UTC().Truncate(time.Second)
	w.CreatedAt = now
	w.LastUpdatedAt = now
	f.store.wishlists[w.ID] = *w
	return nil
}

func (f *fakeWishlistRepo) Update(_ context.Context, w *models.Wishlist) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	w.LastUpdatedAt = time.Now().UTC().Truncate(time.Second)
	f.store.wishlists[w.ID] = *w
	return nil
}

func (f *fakeWishlistRepo) Delete(_ context.Context, id uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for itemID, item := range f.store.items {
		if item.WishlistID == id {
			delete(f.store.items, itemID)
		}
	}
	delete(f.store.wishlists, id)
	return nil
}

func (f *fakeWishlistRepo) Find(_ context.Context, id uint) (*models.Wishlist, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	w, ok := f.store.wishlists[id]
	if !ok {
		return nil, nil
	}
	w.WishlistItems = f.store.itemsOf(id)
	return &w, nil
}

func (f *fakeWishlistRepo) All(_ context.Context) ([]models.Wishlist, error) {
	return f.filter(func(models.Wishlist) bool { return true })
}

func (f *fakeWishlistRepo) FindByName(_ context.Context, name string) ([]models.Wishlist, error) {
	return f.filter(func(w models.Wishlist) bool { return w.Name == name })
}

func (f *fakeWishlistRepo) FindForUser(_ context.Context, username string) ([]models.Wishlist, error) {
	return f.filter(func(w models.Wishlist) bool { return w.Username == username })
}

func (f *fakeWishlistRepo) filter(keep func(models.Wishlist) bool) ([]models.Wishlist, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.forcedErr != nil {
		return nil, f.store.forcedErr
	}
	result := []models.Wishlist{}
	for _, w := range f.store.wishlists {
		if keep(w) {
			w.WishlistItems = f.store.itemsOf(w.ID)
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeItemRepo struct{ store *fakeStore }

func (f *fakeItemRepo) Create(_ context.Context, item *models.WishlistItem) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	item.ID = f.store.allocID()
	now := time.Now().UTC().Truncate(time.Second)
	item.CreatedAt = now
	item.LastUpdatedAt = now
	f.store.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *models.WishlistItem) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	item.LastUpdatedAt = time.Now().UTC().Truncate(time.Second)
	f.store.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.items, id)
	return nil
}

func (f *fakeItemRepo) Find(_ context.Context, id uint) (*models.WishlistItem, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	item, ok := f.store.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeItemRepo) All(_ context.Context) ([]models.WishlistItem, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	result := []models.WishlistItem{}
	for _, item := range f.store.items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeItemRepo) FindByProductName(_ context.Context, name string, wishlistID uint) ([]models.WishlistItem, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	result := []models.WishlistItem{}
	for _, item := range f.store.items {
		if item.WishlistID == wishlistID && item.ProductName == name {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// newTestRouter builds the full route tree over a fresh in-memory store
func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	wc := controllers.NewWishlistController(&fakeWishlistRepo{store: store})
	ic := controllers.NewWishlistItemController(&fakeWishlistRepo{store: store}, &fakeItemRepo{store: store})
	return routes.SetupRouter(wc, ic), store
}

// doJSON performs a request carrying a JSON body
func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// do performs a request without a body
func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// newPlainTextRequest builds a request carrying a body with the wrong media type
func newPlainTextRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
