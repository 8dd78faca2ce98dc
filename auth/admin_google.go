package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *auth.Client
	projectID    string
)

func init() {
	// Load .env locally
	_ = godotenv.Load()

	ctx := context.Background()

	// Read the whole JSON blob out of the ENV
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	// INITIALIZE FIREBASE with the JSON directly (no file!)
	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

// GoogleStaffLoginHandler signs in admins and store owners. The role comes
// from the stored profile, never from the token; a plain customer is turned
// away here and must use the customer login.
func GoogleStaffLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify the token AND check for revocation
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		http.Error(w, "Invalid or revoked ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		log.Printf("❌ Token audience mismatch: got %q", token.Audience)
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")

	// Super admin shortcut
	if superAdminEmail != "" && email == superAdminEmail {
		issueTokenAndRespond(w, email, string(models.RoleAdmin), firebaseUserID, name, picture)
		return
	}

	var profile models.Profile
	err = db.Where("email = ?", email).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		http.Error(w, "No staff account for this email", http.StatusForbidden)
		return
	} else if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if profile.Role != models.RoleAdmin && profile.Role != models.RoleStoreOwner {
		http.Error(w, "Account has no staff role", http.StatusForbidden)
		return
	}

	// Update profile if changed
	db.Model(&profile).Updates(models.Profile{Name: name, Picture: picture})

	issueTokenAndRespond(w, email, string(profile.Role), profile.ID, name, picture)
}

// issueTokenAndRespond issues JWT and sends JSON response.
func issueTokenAndRespond(w http.ResponseWriter, email, role, userID, name, picture string) {
	jwtStr := generateJWT(email, role, userID)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   jwtStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}

func generateJWT(email, role, userID string) string {
	claims := jwt.MapClaims{
		"email":   email,
		"role":    role,
		"user_id": userID,
		"exp":     time.Now().AddDate(0, 2, 0).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	hmac := []byte(os.Getenv("JWT_SECRET"))
	signed, err := t.SignedString(hmac)
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signed
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to write JSON response: %v", err)
	}
}
