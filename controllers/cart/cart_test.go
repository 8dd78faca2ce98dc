package cartControllers

import (
	"testing"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:cart_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id, storeID string, price float64, freeDelivery bool) {
	t.Helper()
	p := models.Product{
		ID:                      id,
		Name:                    "Product " + id,
		Price:                   price,
		StoreID:                 storeID,
		Stock:                   100,
		IsFreeDelivery:          freeDelivery,
		IsDeliveryHomeAvailable: true,
		IsDeliveryDeskAvailable: true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func str(s string) *string { return &s }

func TestAddItemMergesSameVariant(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)

	first, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1, Color: str("red"), Size: str("M")})
	assert.NoError(t, err)

	second, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 2, Color: str("red"), Size: str("M")})
	assert.NoError(t, err)

	assert.Equal(t, first.LineID, second.LineID)
	assert.Equal(t, 3, second.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddItemDifferentVariantGetsOwnLine(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)

	first, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1, Color: str("red"), Size: str("M")})
	assert.NoError(t, err)

	second, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1, Color: str("blue"), Size: str("M")})
	assert.NoError(t, err)

	assert.NotEqual(t, first.LineID, second.LineID)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestAddItemAdoptsFirstStore(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)
	seedProduct(t, db, "p2", "store-y", 300, false)

	_, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1})
	assert.NoError(t, err)

	cart, err := GetOrCreateCart(db, "user-1")
	assert.NoError(t, err)
	if assert.NotNil(t, cart.StoreID) {
		assert.Equal(t, "store-x", *cart.StoreID)
	}

	// A later product from another store does not steal ownership.
	_, err = AddItem(db, "user-1", AddItemInput{ProductID: "p2", Quantity: 1})
	assert.NoError(t, err)

	cart, _ = GetOrCreateCart(db, "user-1")
	assert.Equal(t, "store-x", *cart.StoreID)
}

func TestAddItemRejectsUnknownAndSoldOut(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)
	db.Model(&models.Product{}).Where("id = ?", "p1").Update("is_sold_out", true)

	_, err := AddItem(db, "user-1", AddItemInput{ProductID: "missing", Quantity: 1})
	assert.Error(t, err)

	_, err = AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1})
	assert.Error(t, err)
}

func TestSummarizeTotalsAndFreeDelivery(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)
	seedProduct(t, db, "p2", "store-x", 1000, false)

	_, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 2})
	assert.NoError(t, err)
	_, err = AddItem(db, "user-1", AddItemInput{ProductID: "p2", Quantity: 1})
	assert.NoError(t, err)

	cart, err := GetOrCreateCart(db, "user-1")
	assert.NoError(t, err)

	summary := Summarize(cart)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 2000.0, summary.TotalPrice)
	// One paid-delivery line poisons the whole cart.
	assert.False(t, summary.HasFreeDelivery)
}

func TestSummarizeAllFreeLines(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)

	_, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 2})
	assert.NoError(t, err)

	cart, _ := GetOrCreateCart(db, "user-1")
	assert.True(t, Summarize(cart).HasFreeDelivery)
}

func TestSummarizeEmptyCartNeverFree(t *testing.T) {
	cart := &models.Cart{}
	summary := Summarize(cart)
	assert.False(t, summary.HasFreeDelivery)
	assert.Equal(t, 0, summary.TotalItems)
	assert.Equal(t, 0.0, summary.TotalPrice)
}

func TestClearCartEmptiesAndDropsStore(t *testing.T) {
	db := setupCartDB(t)
	seedProduct(t, db, "p1", "store-x", 500, true)

	_, err := AddItem(db, "user-1", AddItemInput{ProductID: "p1", Quantity: 1})
	assert.NoError(t, err)

	assert.NoError(t, ClearCart(db, "user-1"))

	cart, err := GetOrCreateCart(db, "user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.StoreID)

	// Clearing an owner with no cart is a no-op.
	assert.NoError(t, ClearCart(db, "nobody"))
}
