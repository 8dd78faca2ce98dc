package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:order_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Store{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func statusRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/store/orders/:orderID/status", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		UpdateOrderStatusHandler(db)(c)
	})
	return r
}

func statusBody(status string) *bytes.Reader {
	body, _ := json.Marshal(map[string]string{"status": status})
	return bytes.NewReader(body)
}

func seedOrder(t *testing.T, db *gorm.DB, storeID string) models.Order {
	t.Helper()
	order := models.Order{
		OrderRef: "ref-" + storeID,
		StoreID:  &storeID,
		FullName: "Nour B.",
		Phone:    "0550123456",
		Status:   models.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestUpdateOrderStatusOwnStore(t *testing.T) {
	db := setupOrderDB(t)
	db.Create(&models.Store{ID: "store-a", Name: "Boutique A", OwnerID: "owner-a", IsActive: true})
	order := seedOrder(t, db, "store-a")
	r := statusRouter(db, "owner-a")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/store/orders/1/status", statusBody("confirmed")))
	assert.Equal(t, http.StatusOK, w.Code)

	db.First(&order, order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestUpdateOrderStatusRefusesOtherStoresOrder(t *testing.T) {
	db := setupOrderDB(t)
	db.Create(&models.Store{ID: "store-a", Name: "Boutique A", OwnerID: "owner-a", IsActive: true})
	db.Create(&models.Store{ID: "store-b", Name: "Boutique B", OwnerID: "owner-b", IsActive: true})
	order := seedOrder(t, db, "store-b")
	r := statusRouter(db, "owner-a")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/store/orders/1/status", statusBody("cancelled")))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The row is untouched.
	db.First(&order, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestUpdateOrderStatusAdminUpdatesAnyStore(t *testing.T) {
	db := setupOrderDB(t)
	db.Create(&models.Store{ID: "store-b", Name: "Boutique B", OwnerID: "owner-b", IsActive: true})
	order := seedOrder(t, db, "store-b")
	// API-key routes set no user_id.
	r := statusRouter(db, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/store/orders/1/status", statusBody("shipped")))
	assert.Equal(t, http.StatusOK, w.Code)

	db.First(&order, order.ID)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := setupOrderDB(t)
	db.Create(&models.Store{ID: "store-a", Name: "Boutique A", OwnerID: "owner-a", IsActive: true})
	seedOrder(t, db, "store-a")
	r := statusRouter(db, "owner-a")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/store/orders/1/status", statusBody("teleported")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
