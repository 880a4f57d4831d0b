package handlers

import (
	"net/http"

	"github.com/Chaitanya2267/edulink/config"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	Settings config.Settings
}

// GET /api/health
func (db *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Hello from the backend!",
	})
}
