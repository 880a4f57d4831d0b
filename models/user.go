package models

import "gorm.io/gorm"

// User represents a user in the system
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null;size:100"`
	Email    string `gorm:"unique;not null;size:255"`

	Courses []Course `gorm:"foreignKey:InstructorID"`
}
