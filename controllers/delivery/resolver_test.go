package deliveryControllers

import (
	"testing"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupResolverDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:resolver_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
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

func f64(v float64) *float64 { return &v }
func b(v bool) *bool         { return &v }

func TestResolveUsesWilayaDefaultsWithoutCompany(t *testing.T) {
	db := setupResolverDB(t)

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)
	assert.True(t, methods.Home.Enabled)
	assert.True(t, methods.Desk.Enabled)
	assert.Equal(t, 500.0, methods.Home.Price)
	assert.Equal(t, 300.0, methods.Desk.Price)
	assert.False(t, methods.Blocked())
}

func TestResolveUsesZonePriceForAssignedCompany(t *testing.T) {
	db := setupResolverDB(t)

	db.Create(&models.DeliveryCompany{ID: "cmp-1", Name: "Yalidine"})
	db.Create(&models.DeliveryZone{ID: "zone-1", CompanyID: "cmp-1", Name: "Centre", PriceHome: 650, PriceDesk: 400})
	db.Create(&models.ZoneWilaya{ZoneID: "zone-1", WilayaCode: "16"})
	db.Create(&models.StoreDeliverySetting{StoreID: "store-1", CompanyID: "cmp-1"})

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)
	assert.Equal(t, 650.0, methods.Home.Price)
	assert.Equal(t, 400.0, methods.Desk.Price)
	assert.True(t, methods.Home.Enabled)
	assert.True(t, methods.Desk.Enabled)
}

func TestResolveOverrideBeatsZoneAndDefaults(t *testing.T) {
	db := setupResolverDB(t)

	db.Create(&models.DeliveryCompany{ID: "cmp-1", Name: "Yalidine"})
	db.Create(&models.DeliveryZone{ID: "zone-1", CompanyID: "cmp-1", Name: "Centre", PriceHome: 650, PriceDesk: 400})
	db.Create(&models.ZoneWilaya{ZoneID: "zone-1", WilayaCode: "16"})
	db.Create(&models.StoreDeliverySetting{StoreID: "store-1", CompanyID: "cmp-1"})
	db.Create(&models.StoreDeliveryOverride{
		StoreID:       "store-1",
		WilayaCode:    "16",
		PriceHome:     f64(150),
		IsDeskEnabled: b(false),
	})

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)

	// Explicit home price wins over the zone price.
	assert.True(t, methods.Home.Enabled)
	assert.Equal(t, 150.0, methods.Home.Price)

	// Desk is disabled by the override; its unset price reads as zero.
	assert.False(t, methods.Desk.Enabled)
	assert.Equal(t, 0.0, methods.Desk.Price)
	assert.False(t, methods.Blocked())
}

func TestResolveOverrideNilFlagsMeanEnabled(t *testing.T) {
	db := setupResolverDB(t)

	db.Create(&models.StoreDeliveryOverride{StoreID: "store-1", WilayaCode: "16"})

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)
	assert.True(t, methods.Home.Enabled)
	assert.True(t, methods.Desk.Enabled)
	assert.Equal(t, 0.0, methods.Home.Price)
	assert.Equal(t, 0.0, methods.Desk.Price)
}

func TestResolveOutsideCompanyCoverageBlocksBothMethods(t *testing.T) {
	db := setupResolverDB(t)

	db.Create(&models.DeliveryCompany{ID: "cmp-1", Name: "Yalidine"})
	db.Create(&models.DeliveryZone{ID: "zone-1", CompanyID: "cmp-1", Name: "Sud", PriceHome: 1200, PriceDesk: 800})
	db.Create(&models.ZoneWilaya{ZoneID: "zone-1", WilayaCode: "01"})
	db.Create(&models.StoreDeliverySetting{StoreID: "store-1", CompanyID: "cmp-1"})

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)
	assert.False(t, methods.Home.Enabled)
	assert.False(t, methods.Desk.Enabled)
	assert.Equal(t, ErrDeliveryUnavailable, methods.Error)
	assert.True(t, methods.Blocked())
}

func TestResolveIgnoresOtherCompanyZones(t *testing.T) {
	db := setupResolverDB(t)

	// Another company covers the wilaya but the store is not assigned to it.
	db.Create(&models.DeliveryCompany{ID: "cmp-2", Name: "ZR Express"})
	db.Create(&models.DeliveryZone{ID: "zone-2", CompanyID: "cmp-2", Name: "Centre", PriceHome: 700, PriceDesk: 500})
	db.Create(&models.ZoneWilaya{ZoneID: "zone-2", WilayaCode: "16"})

	db.Create(&models.DeliveryCompany{ID: "cmp-1", Name: "Yalidine"})
	db.Create(&models.StoreDeliverySetting{StoreID: "store-1", CompanyID: "cmp-1"})

	methods, err := ResolveDeliveryFees(db, "store-1", "16")
	assert.NoError(t, err)
	assert.True(t, methods.Blocked())
}
