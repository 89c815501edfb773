package models

import "gorm.io/gorm"

// Category is a named grouping used by articles and courses
type Category struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Course is a flat catalog entry managed from the admin panel
type Course struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// Content is a flat catalog entry managed from the admin panel
type Content struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

func (Content) TableName() string {
	return "contents"
}
