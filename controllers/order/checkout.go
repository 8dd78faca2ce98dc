package orderControllers

import (
	"errors"
	"strings"
	"time"

	cartControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/cart"
	deliveryControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/delivery"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressUnspecified is stored when the buyer leaves the address blank.
const AddressUnspecified = "غير محدد"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMultiStoreCart  = errors.New("cart contains products from more than one store; split it into separate orders")
	ErrMissingContact  = errors.New("name, phone and wilaya are required")
	ErrDeliveryBlocked = errors.New(deliveryControllers.ErrDeliveryUnavailable)
	ErrMethodDisabled  = errors.New("selected delivery method is not available for this wilaya")
)

type CheckoutRequest struct {
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	WilayaID       uint   `json:"wilaya_id"`
	DeliveryOption string `json:"delivery_option"` // "home" or "desktop"
	PromoCode      string `json:"promo_code"`
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout validates the owner's cart and submits it as one atomic order.
// Validation is fail-fast: the first violation aborts with no writes.
func Checkout(db *gorm.DB, ownerID string, req CheckoutRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("owner_id = ?", ownerID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Single-store invariant: reject mixed carts outright, no splitting.
	storeIDs := distinctStoreIDs(cart.Items)
	if len(storeIDs) > 1 {
		return nil, ErrMultiStoreCart
	}

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Phone) == "" || req.WilayaID == 0 {
		return nil, ErrMissingContact
	}

	var wilaya models.Wilaya
	if err := db.First(&wilaya, req.WilayaID).Error; err != nil {
		return nil, errors.New("unknown wilaya")
	}

	var orderStoreID *string
	if len(storeIDs) == 1 {
		orderStoreID = &storeIDs[0]
	}

	methods := deliveryControllers.DeliveryMethods{
		Home: deliveryControllers.DeliveryMethod{Enabled: true},
		Desk: deliveryControllers.DeliveryMethod{Enabled: true},
	}
	if orderStoreID != nil {
		var err error
		methods, err = deliveryControllers.ResolveDeliveryFees(db, *orderStoreID, wilaya.Code)
		if err != nil {
			return nil, err
		}
	}

	// A method only works when the wilaya resolution allows it AND every
	// product in the cart supports it.
	homeOK := methods.Home.Enabled && allSupportHome(cart.Items)
	deskOK := methods.Desk.Enabled && allSupportDesk(cart.Items)
	if methods.Error != "" || (!homeOK && !deskOK) {
		return nil, ErrDeliveryBlocked
	}

	option := req.DeliveryOption
	if option != models.DeliveryOptionHome && option != models.DeliveryOptionDesk {
		option = models.DeliveryOptionHome
	}
	// Mirror the storefront's auto-switch when only one method works.
	if option == models.DeliveryOptionHome && !homeOK {
		option = models.DeliveryOptionDesk
	} else if option == models.DeliveryOptionDesk && !deskOK {
		option = models.DeliveryOptionHome
	}
	if (option == models.DeliveryOptionHome && !homeOK) || (option == models.DeliveryOptionDesk && !deskOK) {
		return nil, ErrMethodDisabled
	}

	summary := cartControllers.Summarize(&cart)

	subtotal := summary.TotalPrice
	if code := strings.ToUpper(strings.TrimSpace(req.PromoCode)); code != "" {
		var promo models.PromoCode
		if err := db.Where("code = ?", code).First(&promo).Error; err != nil {
			return nil, errors.New("invalid promo code")
		}
		if !promo.Usable(time.Now()) {
			return nil, errors.New("promo code expired or inactive")
		}
		subtotal -= subtotal * promo.DiscountPercent / 100
	}

	deliveryPrice := 0.0
	if !summary.HasFreeDelivery {
		if option == models.DeliveryOptionHome {
			deliveryPrice = methods.Home.Price
		} else {
			deliveryPrice = methods.Desk.Price
		}
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		address = AddressUnspecified
	}

	var userID *string
	if !strings.HasPrefix(ownerID, "guest_") {
		userID = &ownerID
	}

	order := models.Order{
		OrderRef:       generateOrderRef(),
		StoreID:        orderStoreID,
		StoreIDs:       storeIDs,
		UserID:         userID,
		WilayaID:       wilaya.ID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Address:        address,
		DeliveryOption: option,
		TotalPrice:     subtotal + deliveryPrice,
		DeliveryPrice:  deliveryPrice,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			Price:         item.Price,
			SelectedColor: item.Color,
			SelectedSize:  item.Size,
			StoreID:       item.StoreID,
		})
	}

	// All-or-nothing: order, items, stock and cart clearing in one tx.
	// The guarded UPDATE doubles as the stock check, so two concurrent
	// checkouts cannot both take the last unit.
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range cart.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&cart).Update("store_id", nil).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

func distinctStoreIDs(items []models.CartItem) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, item := range items {
		if item.StoreID == "" || seen[item.StoreID] {
			continue
		}
		seen[item.StoreID] = true
		ids = append(ids, item.StoreID)
	}
	return ids
}

func allSupportHome(items []models.CartItem) bool {
	for _, item := range items {
		if !item.IsHomeAvailable {
			return false
		}
	}
	return true
}

func allSupportDesk(items []models.CartItem) bool {
	for _, item := range items {
		if !item.IsDeskAvailable {
			return false
		}
	}
	return true
}
