package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Chaitanya2267/edulink/models"
	"gorm.io/gorm"
)

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GET /api/users
func (db *DBHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		log.Printf("GetUsers: query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Username: u.Username, Email: u.Email})
	}

	writeJSON(w, http.StatusOK, map[string][]userResponse{"users": out})
}

// POST /api/users
func (db *DBHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == nil || req.Email == nil {
		writeError(w, http.StatusBadRequest, "username and email are required")
		return
	}

	user := models.User{Username: *req.Username, Email: *req.Email}

	// A failed create rolls back, so a uniqueness conflict leaves the table
	// untouched. The store's error text goes back to the caller.
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("CreateUser: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}
