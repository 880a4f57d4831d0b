package models

import "gorm.io/gorm"

// Material is a piece of course content. It is part of the schema but no
// endpoint serves it yet.
type Material struct {
	gorm.Model
	Title   string `gorm:"size:200"`
	FileURL string `gorm:"size:500"`

	CourseID uint   `gorm:"not null"`
	Course   Course `gorm:"foreignKey:CourseID" json:"-"`
}
