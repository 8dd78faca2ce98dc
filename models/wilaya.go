package models

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Wilaya is one of Algeria's administrative regions, the unit delivery
// prices are quoted against. Rows are seeded once at boot and never
// written by request handlers.
type Wilaya struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Code              string  `gorm:"uniqueIndex;not null" json:"code"`
	Name              string  `json:"name"`
	NameAr            string  `json:"name_ar"`
	HomeDeliveryPrice float64 `json:"home_delivery_price"`
	DeskDeliveryPrice float64 `json:"desk_delivery_price"`
}

type wilayaSeed struct {
	code, name, nameAr string
	home, desk         float64
}

var wilayaSeeds = []wilayaSeed{
	{"01", "Adrar", "أدرار", 1400, 900},
	{"02", "Chlef", "الشلف", 750, 450},
	{"03", "Laghouat", "الأغواط", 950, 600},
	{"04", "Oum El Bouaghi", "أم البواقي", 800, 450},
	{"05", "Batna", "باتنة", 800, 450},
	{"06", "Béjaïa", "بجاية", 750, 450},
	{"07", "Biskra", "بسكرة", 900, 550},
	{"08", "Béchar", "بشار", 1100, 650},
	{"09", "Blida", "البليدة", 600, 400},
	{"10", "Bouira", "البويرة", 700, 450},
	{"11", "Tamanrasset", "تمنراست", 1600, 1000},
	{"12", "Tébessa", "تبسة", 850, 500},
	{"13", "Tlemcen", "تلمسان", 800, 450},
	{"14", "Tiaret", "تيارت", 800, 450},
	{"15", "Tizi Ouzou", "تيزي وزو", 700, 450},
	{"16", "Alger", "الجزائر", 500, 350},
	{"17", "Djelfa", "الجلفة", 950, 600},
	{"18", "Jijel", "جيجل", 750, 450},
	{"19", "Sétif", "سطيف", 750, 450},
	{"20", "Saïda", "سعيدة", 800, 500},
	{"21", "Skikda", "سكيكدة", 750, 450},
	{"22", "Sidi Bel Abbès", "سيدي بلعباس", 800, 450},
	{"23", "Annaba", "عنابة", 800, 450},
	{"24", "Guelma", "قالمة", 800, 450},
	{"25", "Constantine", "قسنطينة", 750, 450},
	{"26", "Médéa", "المدية", 700, 450},
	{"27", "Mostaganem", "مستغانم", 750, 450},
	{"28", "M'Sila", "المسيلة", 850, 500},
	{"29", "Mascara", "معسكر", 800, 450},
	{"30", "Ouargla", "ورقلة", 950, 600},
	{"31", "Oran", "وهران", 700, 450},
	{"32", "El Bayadh", "البيض", 1000, 600},
	{"33", "Illizi", "إليزي", 1700, 1200},
	{"34", "Bordj Bou Arreridj", "برج بوعريريج", 750, 450},
	{"35", "Boumerdès", "بومرداس", 600, 400},
	{"36", "El Tarf", "الطارف", 850, 500},
	{"37", "Tindouf", "تندوف", 1600, 1000},
	{"38", "Tissemsilt", "تيسمسيلت", 800, 500},
	{"39", "El Oued", "الوادي", 950, 600},
	{"40", "Khenchela", "خنشلة", 850, 500},
	{"41", "Souk Ahras", "سوق أهراس", 850, 500},
	{"42", "Tipaza", "تيبازة", 600, 400},
	{"43", "Mila", "ميلة", 800, 450},
	{"44", "Aïn Defla", "عين الدفلى", 750, 450},
	{"45", "Naâma", "النعامة", 1000, 600},
	{"46", "Aïn Témouchent", "عين تموشنت", 800, 450},
	{"47", "Ghardaïa", "غرداية", 950, 600},
	{"48", "Relizane", "غليزان", 800, 450},
	{"49", "Timimoun", "تيميمون", 1400, 900},
	{"50", "Bordj Badji Mokhtar", "برج باجي مختار", 1700, 1200},
	{"51", "Ouled Djellal", "أولاد جلال", 950, 600},
	{"52", "Béni Abbès", "بني عباس", 1400, 900},
	{"53", "In Salah", "عين صالح", 1600, 1000},
	{"54", "In Guezzam", "عين قزام", 1700, 1200},
	{"55", "Touggourt", "تقرت", 950, 600},
	{"56", "Djanet", "جانت", 1700, 1200},
	{"57", "El M'Ghair", "المغير", 950, 600},
	{"58", "El Meniaa", "المنيعة", 1000, 600},
}

// SeedWilayas inserts the wilaya catalog when it is missing. Existing rows
// are left untouched so admin price edits survive restarts.
func SeedWilayas(db *gorm.DB) error {
	rows := make([]Wilaya, 0, len(wilayaSeeds))
	for i, s := range wilayaSeeds {
		rows = append(rows, Wilaya{
			ID:                uint(i + 1),
			Code:              s.code,
			Name:              s.name,
			NameAr:            s.nameAr,
			HomeDeliveryPrice: s.home,
			DeskDeliveryPrice: s.desk,
		})
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Seeded %d wilayas", result.RowsAffected)
	}
	return nil
}
