package orderControllers

import (
	"testing"
	"time"

	cartControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/cart"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:checkout_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Wilaya{},
		&models.DeliveryCompany{},
		&models.DeliveryZone{},
		&models.ZoneWilaya{},
		&models.StoreDeliverySetting{},
		&models.StoreDeliveryOverride{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PromoCode{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&models.Wilaya{
		Code: "16", Name: "Alger", NameAr: "الجزائر",
		HomeDeliveryPrice: 500, DeskDeliveryPrice: 300,
	}).Error; err != nil {
		t.Fatalf("seed wilaya: %v", err)
	}
	return db
}

func seedCheckoutProduct(t *testing.T, db *gorm.DB, id, storeID string, price float64, stock int, freeDelivery bool) {
	t.Helper()
	p := models.Product{
		ID:                      id,
		Name:                    "Product " + id,
		Price:                   price,
		StoreID:                 storeID,
		Stock:                   stock,
		IsFreeDelivery:          freeDelivery,
		IsDeliveryHomeAvailable: true,
		IsDeliveryDeskAvailable: true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func addToCart(t *testing.T, db *gorm.DB, ownerID, productID string, qty int) {
	t.Helper()
	if _, err := cartControllers.AddItem(db, ownerID, cartControllers.AddItemInput{ProductID: productID, Quantity: qty}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		FullName:       "Nour B.",
		Phone:          "0550123456",
		WilayaID:       1,
		DeliveryOption: models.DeliveryOptionHome,
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupCheckoutDB(t)

	_, err := Checkout(db, "user-1", validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsMultiStoreCart(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	seedCheckoutProduct(t, db, "p2", "store-y", 300, 10, false)
	addToCart(t, db, "user-1", "p1", 1)
	addToCart(t, db, "user-1", "p2", 1)

	_, err := Checkout(db, "user-1", validRequest())
	assert.ErrorIs(t, err, ErrMultiStoreCart)

	// Nothing was written.
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestCheckoutRequiresContact(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	addToCart(t, db, "user-1", "p1", 1)

	req := validRequest()
	req.Phone = "  "
	_, err := Checkout(db, "user-1", req)
	assert.ErrorIs(t, err, ErrMissingContact)

	req = validRequest()
	req.WilayaID = 0
	_, err = Checkout(db, "user-1", req)
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestCheckoutChargesDeliveryUnlessAllLinesFree(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, true)
	seedCheckoutProduct(t, db, "p2", "store-x", 1000, 10, false)
	addToCart(t, db, "user-1", "p1", 2)
	addToCart(t, db, "user-1", "p2", 1)

	order, err := Checkout(db, "user-1", validRequest())
	assert.NoError(t, err)

	// Two free-delivery units plus one paid line: fee applies to the cart.
	assert.Equal(t, 500.0, order.DeliveryPrice)
	assert.Equal(t, 2500.0, order.TotalPrice)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestCheckoutFreeDeliveryWhenEveryLineQualifies(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, true)
	addToCart(t, db, "user-1", "p1", 2)

	order, err := Checkout(db, "user-1", validRequest())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, order.DeliveryPrice)
	assert.Equal(t, 1000.0, order.TotalPrice)
}

func TestCheckoutDecrementsStockAndClearsCart(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 5, false)
	addToCart(t, db, "user-1", "p1", 3)

	order, err := Checkout(db, "user-1", validRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, order.OrderRef)

	var product models.Product
	db.First(&product, "id = ?", "p1")
	assert.Equal(t, 2, product.Stock)

	cart, err := cartControllers.GetOrCreateCart(db, "user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.StoreID)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 2, false)
	addToCart(t, db, "user-1", "p1", 3)

	_, err := Checkout(db, "user-1", validRequest())
	assert.Error(t, err)

	// Stock untouched, cart intact, no order rows.
	var product models.Product
	db.First(&product, "id = ?", "p1")
	assert.Equal(t, 2, product.Stock)

	cart, _ := cartControllers.GetOrCreateCart(db, "user-1")
	assert.Len(t, cart.Items, 1)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestCheckoutGuestOrderHasNoUserID(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	addToCart(t, db, "guest_abc123", "p1", 1)

	order, err := Checkout(db, "guest_abc123", validRequest())
	assert.NoError(t, err)
	assert.Nil(t, order.UserID)
}

func TestCheckoutDefaultsBlankAddress(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	addToCart(t, db, "user-1", "p1", 1)

	req := validRequest()
	req.Address = "   "
	order, err := Checkout(db, "user-1", req)
	assert.NoError(t, err)
	assert.Equal(t, AddressUnspecified, order.Address)
}

func TestCheckoutBlockedWilaya(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	addToCart(t, db, "user-1", "p1", 1)

	// Assign the store to a company whose zones skip wilaya 16.
	db.Create(&models.DeliveryCompany{ID: "cmp-1", Name: "Yalidine"})
	db.Create(&models.DeliveryZone{ID: "zone-1", CompanyID: "cmp-1", Name: "Sud", PriceHome: 1200, PriceDesk: 800})
	db.Create(&models.ZoneWilaya{ZoneID: "zone-1", WilayaCode: "01"})
	db.Create(&models.StoreDeliverySetting{StoreID: "store-x", CompanyID: "cmp-1"})

	_, err := Checkout(db, "user-1", validRequest())
	assert.ErrorIs(t, err, ErrDeliveryBlocked)
}

func TestCheckoutAutoSwitchesToDeskWhenHomeDisabled(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 500, 10, false)
	addToCart(t, db, "user-1", "p1", 1)

	homeOff := false
	db.Create(&models.StoreDeliveryOverride{
		StoreID:       "store-x",
		WilayaCode:    "16",
		IsHomeEnabled: &homeOff,
		PriceDesk:     ptrFloat(250),
	})

	req := validRequest()
	req.DeliveryOption = models.DeliveryOptionHome
	order, err := Checkout(db, "user-1", req)
	assert.NoError(t, err)
	assert.Equal(t, models.DeliveryOptionDesk, order.DeliveryOption)
	assert.Equal(t, 250.0, order.DeliveryPrice)
}

func TestCheckoutAppliesPromoCode(t *testing.T) {
	db := setupCheckoutDB(t)
	seedCheckoutProduct(t, db, "p1", "store-x", 1000, 10, true)
	addToCart(t, db, "user-1", "p1", 1)

	db.Create(&models.PromoCode{Code: "SALE10", DiscountPercent: 10, IsActive: true})

	// Codes are stored upper-case; entry is case-insensitive.
	req := validRequest()
	req.PromoCode = "sale10"
	order, err := Checkout(db, "user-1", req)
	assert.NoError(t, err)
	assert.Equal(t, 900.0, order.TotalPrice)

	expired := time.Now().Add(-time.Hour)
	db.Create(&models.PromoCode{Code: "OLD", DiscountPercent: 10, IsActive: true, ExpiresAt: &expired})
	addToCart(t, db, "user-2", "p1", 1)
	req = validRequest()
	req.PromoCode = "OLD"
	_, err = Checkout(db, "user-2", req)
	assert.Error(t, err)
}

func ptrFloat(v float64) *float64 { return &v }
