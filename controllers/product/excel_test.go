package productcontroller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tealeg/xlsx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExcelDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:excel_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Store{}, &models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&models.Store{ID: "store-a", Name: "Boutique A", OwnerID: "owner-a", IsActive: true}).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return db
}

// sheetBody builds a multipart upload holding one sheet in the export
// column layout: ID, Name, NameAr, Description, DescriptionAr, Price,
// DiscountPercentage, Stock, Colors, Sizes, IsFreeDelivery, HomeDelivery,
// DeskDelivery, Image, CreatedAt.
func sheetBody(t *testing.T, rows [][]string) (*bytes.Buffer, string) {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		t.Fatalf("add sheet: %v", err)
	}
	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "NameAr", "Description", "DescriptionAr", "Price", "DiscountPercentage", "Stock", "Colors", "Sizes", "IsFreeDelivery", "HomeDelivery", "DeskDelivery", "Image", "CreatedAt"} {
		header.AddCell().SetValue(h)
	}
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, cell := range cells {
			row.AddCell().SetValue(cell)
		}
	}

	var excelBuf bytes.Buffer
	if err := file.Write(&excelBuf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "products.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(excelBuf.Bytes()); err != nil {
		t.Fatalf("copy xlsx: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func importRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/store/products/import-excel", func(c *gin.Context) {
		c.Set("user_id", "owner-a")
		ImportProductsFromExcel(db)(c)
	})
	return r
}

func TestImportExcelRoundTripsDeliveryFlags(t *testing.T) {
	db := setupExcelDB(t)
	db.Create(&models.Product{
		ID: "p1", Name: "Hijab Soie", Price: 2500, StoreID: "store-a", Stock: 4,
		IsDeliveryHomeAvailable: true, IsDeliveryDeskAvailable: true,
	})
	r := importRouter(db)

	// An export-edit-import cycle: the owner turns home delivery off on an
	// existing product and uploads a new desk-only one.
	body, contentType := sheetBody(t, [][]string{
		{"p1", "Hijab Soie", "حجاب حرير", "", "", "2500", "", "4", "noir,beige", "", "false", "false", "true", "", ""},
		{"", "Sandales", "صندل", "", "", "1800", "", "9", "", "", "true", "false", "true", "", ""},
	})
	req := httptest.NewRequest(http.MethodPost, "/store/products/import-excel", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var existing models.Product
	db.First(&existing, "id = ?", "p1")
	assert.False(t, existing.IsDeliveryHomeAvailable)
	assert.True(t, existing.IsDeliveryDeskAvailable)

	var created models.Product
	assert.NoError(t, db.Where("name = ?", "Sandales").First(&created).Error)
	assert.False(t, created.IsDeliveryHomeAvailable)
	assert.True(t, created.IsDeliveryDeskAvailable)
	assert.True(t, created.IsFreeDelivery)
	assert.Equal(t, "store-a", created.StoreID)
}
