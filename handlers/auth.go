package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Chaitanya2267/edulink/models"
	"gorm.io/gorm"
)

// POST /api/auth/login
//
// Checks the submitted credentials against the configured demo pair and
// lazily creates the demo user on first success. No token or session is
// issued; the check is stateless per request.
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// A malformed or empty body just means the credentials can't match.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != db.Settings.DemoEmail || req.Password != db.Settings.DemoPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"ok":    false,
			"error": "invalid credentials",
		})
		return
	}

	var user models.User
	err := db.Where("email = ?", db.Settings.DemoEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Username: db.Settings.DemoUsername, Email: db.Settings.DemoEmail}
		if createErr := db.Create(&user).Error; createErr != nil {
			// A concurrent first login may have inserted the row between the
			// lookup and the create; the unique email constraint turns that
			// into an error resolved by re-reading.
			if err := db.Where("email = ?", db.Settings.DemoEmail).First(&user).Error; err != nil {
				log.Printf("Login: creating demo user: %v", createErr)
				writeError(w, http.StatusInternalServerError, createErr.Error())
				return
			}
		}
	} else if err != nil {
		log.Printf("Login: looking up demo user: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"user": userResponse{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}
