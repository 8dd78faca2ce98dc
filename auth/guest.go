package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// guestSessionTTL bounds both the DB row and the token; the daily sweep
// removes rows past it together with their carts.
const guestSessionTTL = 24 * time.Hour

// POST /auth/guest
// Anonymous visitors get a session so they can carry a cart and check out
// without signing in. The "guest_" prefix is what checkout keys off to
// leave the order's user id empty.
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guest := models.GuestUser{
			ID:        "guest_" + randomSessionID(),
			ExpiresAt: time.Now().Add(guestSessionTTL),
		}
		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := issueGuestToken(guest.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guest.ID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func randomSessionID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueGuestToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    "guest",
		"exp":     time.Now().Add(guestSessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
