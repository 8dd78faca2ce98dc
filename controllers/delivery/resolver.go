package deliveryControllers

import (
	"errors"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"gorm.io/gorm"
)

// ErrDeliveryUnavailable is the user-facing message when a store's courier
// does not cover the chosen wilaya.
const ErrDeliveryUnavailable = "التوصيل غير متوفر لهذه الولاية حالياً."

type DeliveryMethod struct {
	Enabled bool    `json:"enabled"`
	Price   float64 `json:"price"`
}

type DeliveryMethods struct {
	Home  DeliveryMethod `json:"home"`
	Desk  DeliveryMethod `json:"desk"`
	Error string         `json:"error,omitempty"`
}

// Blocked reports whether no delivery method can serve the quote at all.
func (m DeliveryMethods) Blocked() bool {
	return m.Error != "" || (!m.Home.Enabled && !m.Desk.Enabled)
}

// ResolveDeliveryFees computes the effective home/desk delivery price and
// availability for (store, wilaya). Strict priority, first match terminates:
//
//  1. a store override for the wilaya wins outright;
//  2. else a zone of the store's assigned company covering the wilaya;
//  3. else, when the store has no company assigned, the wilaya defaults;
//  4. else the wilaya is outside the company's coverage and both methods
//     are disabled.
func ResolveDeliveryFees(db *gorm.DB, storeID, wilayaCode string) (DeliveryMethods, error) {
	var override models.StoreDeliveryOverride
	err := db.Where("store_id = ? AND wilaya_code = ?", storeID, wilayaCode).
		First(&override).Error
	if err == nil {
		return DeliveryMethods{
			Home: DeliveryMethod{
				Enabled: override.IsHomeEnabled == nil || *override.IsHomeEnabled,
				Price:   priceOrZero(override.PriceHome),
			},
			Desk: DeliveryMethod{
				Enabled: override.IsDeskEnabled == nil || *override.IsDeskEnabled,
				Price:   priceOrZero(override.PriceDesk),
			},
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DeliveryMethods{}, err
	}

	var setting models.StoreDeliverySetting
	err = db.Where("store_id = ?", storeID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && setting.CompanyID == "") {
		// No company assigned, fall back to the wilaya catalog price.
		var wilaya models.Wilaya
		if err := db.Where("code = ?", wilayaCode).First(&wilaya).Error; err != nil {
			return DeliveryMethods{}, err
		}
		return DeliveryMethods{
			Home: DeliveryMethod{Enabled: true, Price: wilaya.HomeDeliveryPrice},
			Desk: DeliveryMethod{Enabled: true, Price: wilaya.DeskDeliveryPrice},
		}, nil
	}
	if err != nil {
		return DeliveryMethods{}, err
	}

	var zone models.DeliveryZone
	err = db.
		Joins("JOIN zone_wilayas zw ON zw.zone_id = delivery_zones.id").
		Where("zw.wilaya_code = ? AND delivery_zones.company_id = ?", wilayaCode, setting.CompanyID).
		First(&zone).Error
	if err == nil {
		return DeliveryMethods{
			Home: DeliveryMethod{Enabled: true, Price: zone.PriceHome},
			Desk: DeliveryMethod{Enabled: true, Price: zone.PriceDesk},
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DeliveryMethods{}, err
	}

	// Company assigned but the wilaya is outside every zone it covers.
	return DeliveryMethods{
		Home:  DeliveryMethod{Enabled: false},
		Desk:  DeliveryMethod{Enabled: false},
		Error: ErrDeliveryUnavailable,
	}, nil
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
