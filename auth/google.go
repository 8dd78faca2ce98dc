package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ---------------------------------------------
// GOOGLE CUSTOMER LOGIN
// ---------------------------------------------
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
		GuestID string `json:"guest_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify Firebase token
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	// ---------------------------------------------
	// 1️⃣ Fetch or Create profile
	// ---------------------------------------------
	var profile models.Profile
	err = db.Where("id = ?", firebaseUserID).First(&profile).Error

	if err == gorm.ErrRecordNotFound {
		profile = models.Profile{
			ID:       firebaseUserID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Role:     models.RoleCustomer,
		}

		if err := db.Create(&profile).Error; err != nil {
			http.Error(w, "Failed to create profile", http.StatusInternalServerError)
			return
		}

	} else if err == nil {
		db.Model(&profile).Updates(models.Profile{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// ---------------------------------------------
	// 2️⃣ Merge guest cart → user cart
	// ---------------------------------------------
	var mergeStatus string = "no-guest-cart"

	if req.GuestID != "" {
		merged, err := mergeGuestCart(db, req.GuestID, profile.ID)
		if err != nil {
			mergeStatus = "merge-failed"
		} else if merged {
			mergeStatus = "merged-success"
		} else {
			mergeStatus = "guest-cart-empty"
		}
	}

	// ---------------------------------------------
	// 3️⃣ Create auth response
	// ---------------------------------------------
	resp := map[string]interface{}{
		"message":      "Login successful",
		"merge_status": mergeStatus,
		"user":         profile,
		"token":        issueJWT(email, string(profile.Role), profile.ID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// mergeGuestCart folds the guest's cart lines into the signed-in owner's
// cart. A line merges only when product, color and size all match; anything
// else stays its own line. The guest cart row is deleted afterwards.
// Returns (bool merged, error).
func mergeGuestCart(db *gorm.DB, guestID, userID string) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var guestCart models.Cart
	if err := tx.Preload("Items").
		Where("owner_id = ?", guestID).
		First(&guestCart).Error; err != nil {

		tx.Rollback()
		return false, nil // nothing to merge
	}
	if len(guestCart.Items) == 0 {
		tx.Delete(&guestCart)
		tx.Commit()
		return false, nil
	}

	var userCart models.Cart
	err := tx.Preload("Items").
		Where("owner_id = ?", userID).
		First(&userCart).Error

	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{OwnerID: userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	// A cart belongs to one store. If the user's cart is already attached to
	// a different store the guest lines win: they are the fresher session.
	if userCart.StoreID == nil && guestCart.StoreID != nil {
		if err := tx.Model(&userCart).Update("store_id", *guestCart.StoreID).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	}

	for _, guestItem := range guestCart.Items {
		var matched *models.CartItem
		for i := range userCart.Items {
			it := &userCart.Items[i]
			if it.ProductID == guestItem.ProductID &&
				sameVariant(it.Color, guestItem.Color) &&
				sameVariant(it.Size, guestItem.Size) {
				matched = it
				break
			}
		}

		if matched != nil {
			matched.Quantity += guestItem.Quantity
			matched.AddedAt = time.Now()
			if err := tx.Save(matched).Error; err != nil {
				tx.Rollback()
				return false, err
			}
			continue
		}

		moved := guestItem
		moved.ID = 0
		moved.LineID = uuid.NewString()
		moved.CartID = userCart.CartID
		moved.AddedAt = time.Now()
		if err := tx.Create(&moved).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	}

	if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}

	return true, nil
}

// issueJWT generates a JWT token for a user
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
