package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Chaitanya2267/edulink/models"
	"gorm.io/gorm"
)

var errInstructorNotFound = errors.New("instructor not found")

type courseResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type courseListItem struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Instructor  *string `json:"instructor"`
}

// GET /api/courses
func (db *DBHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	var courses []models.Course
	if err := db.Preload("Instructor").Order("id ASC").Find(&courses).Error; err != nil {
		log.Printf("GetCourses: query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]courseListItem, 0, len(courses))
	for _, c := range courses {
		item := courseListItem{ID: c.ID, Title: c.Title, Description: c.Description}
		if c.Instructor.ID != 0 {
			username := c.Instructor.Username
			item.Instructor = &username
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, map[string][]courseListItem{"courses": out})
}

// POST /api/courses
func (db *DBHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		InstructorID *uint   `json:"instructor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == nil || req.InstructorID == nil {
		writeError(w, http.StatusBadRequest, "title and instructor_id are required")
		return
	}

	course := models.Course{Title: *req.Title}
	if req.Description != nil {
		course.Description = *req.Description
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var instructor models.User
		if err := tx.First(&instructor, *req.InstructorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errInstructorNotFound
			}
			return err
		}

		course.InstructorID = instructor.ID
		return tx.Create(&course).Error
	})
	if err != nil {
		log.Printf("CreateCourse: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, courseResponse{ID: course.ID, Title: course.Title, Description: course.Description})
}
