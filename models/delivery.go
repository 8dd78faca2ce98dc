package models

import "time"

// DeliveryCompany is a courier a store can route its parcels through.
type DeliveryCompany struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Phone1     string         `json:"phone1,omitempty"`
	Phone2     string         `json:"phone2,omitempty"`
	Phone3     string         `json:"phone3,omitempty"`
	WebsiteURL string         `json:"website_url,omitempty"`
	Address    string         `json:"address,omitempty"`
	Zones      []DeliveryZone `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"zones,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DeliveryZone groups wilayas that share one price pair under a company.
type DeliveryZone struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	CompanyID string       `gorm:"index;not null" json:"company_id"`
	Name      string       `gorm:"not null" json:"name"`
	PriceHome float64      `json:"price_home"`
	PriceDesk float64      `json:"price_desk"`
	Wilayas   []ZoneWilaya `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE" json:"wilayas,omitempty"`
}

// ZoneWilaya is a zone membership row. A wilaya appears at most once per zone.
type ZoneWilaya struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ZoneID     string `gorm:"index;uniqueIndex:idx_zone_wilaya" json:"zone_id"`
	WilayaCode string `gorm:"uniqueIndex:idx_zone_wilaya;not null" json:"wilaya_code"`
}

// StoreDeliverySetting assigns a store to its chosen delivery company.
// One row per store.
type StoreDeliverySetting struct {
	StoreID   string    `gorm:"primaryKey" json:"store_id"`
	CompanyID string    `json:"company_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreDeliveryOverride is a store's custom price/availability for one
// wilaya, superseding zone and default pricing. Nil prices resolve to 0,
// nil flags resolve to enabled.
type StoreDeliveryOverride struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	StoreID       string   `gorm:"uniqueIndex:idx_store_wilaya;not null" json:"store_id"`
	WilayaCode    string   `gorm:"uniqueIndex:idx_store_wilaya;not null" json:"wilaya_code"`
	PriceHome     *float64 `json:"price_home,omitempty"`
	PriceDesk     *float64 `json:"price_desk,omitempty"`
	IsHomeEnabled *bool    `json:"is_home_enabled,omitempty"`
	IsDeskEnabled *bool    `json:"is_desk_enabled,omitempty"`
}
