package models

import "gorm.io/gorm"

// Course represents a course taught by an instructor
type Course struct {
	gorm.Model
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"size:1000"`

	InstructorID uint `gorm:"not null"`
	Instructor   User `gorm:"foreignKey:InstructorID" json:"-"`

	Materials []Material `gorm:"foreignKey:CourseID"`
}
