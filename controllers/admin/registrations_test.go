package adminController

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

func setupRegistrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:reg_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Store{},
		&models.StoreRegistrationRequest{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func registrationRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", func(c *gin.Context) {
		c.Set("user_id", userID)
		SubmitRegistration(db)(c)
	})
	r.GET("/registrations", ListRegistrations(db))
	r.POST("/registrations/:id/approve", ApproveRegistration(db))
	r.POST("/registrations/:id/reject", RejectRegistration(db))
	return r
}

func submitBody() []byte {
	body, _ := json.Marshal(map[string]string{
		"store_name": "Boutique Nour",
		"owner_name": "Nour B.",
		"email":      "nour@example.com",
		"phone":      "0550123456",
	})
	return body
}

func TestSubmitRegistrationOnePendingPerUser(t *testing.T) {
	db := setupRegistrationDB(t)
	r := registrationRouter(db, "user-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(submitBody())))
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second application while the first is pending is refused.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(submitBody())))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveRegistrationCreatesStoreAndPromotesOwner(t *testing.T) {
	db := setupRegistrationDB(t)
	db.Create(&models.Profile{ID: "user-1", Email: "nour@example.com", Role: models.RoleCustomer})
	r := registrationRouter(db, "user-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(submitBody())))
	assert.Equal(t, http.StatusCreated, w.Code)

	var request models.StoreRegistrationRequest
	db.First(&request)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registrations/1/approve", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var store models.Store
	assert.NoError(t, db.Where("owner_id = ?", "user-1").First(&store).Error)
	assert.Equal(t, "Boutique Nour", store.Name)
	assert.True(t, store.IsActive)

	var profile models.Profile
	db.First(&profile, "id = ?", "user-1")
	assert.Equal(t, models.RoleStoreOwner, profile.Role)

	db.First(&request)
	assert.Equal(t, models.RegistrationApproved, request.Status)
	assert.NotNil(t, request.ReviewedAt)

	// A reviewed request cannot be approved twice.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registrations/1/approve", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectRegistrationLeavesRoleUntouched(t *testing.T) {
	db := setupRegistrationDB(t)
	db.Create(&models.Profile{ID: "user-1", Email: "nour@example.com", Role: models.RoleCustomer})
	r := registrationRouter(db, "user-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(submitBody())))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registrations/1/reject", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	db.First(&profile, "id = ?", "user-1")
	assert.Equal(t, models.RoleCustomer, profile.Role)

	var stores int64
	db.Model(&models.Store{}).Count(&stores)
	assert.Zero(t, stores)
}
