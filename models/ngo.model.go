package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is an NGO event shown on the public site
type Event struct {
	gorm.Model
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	IsDeleted   bool       `gorm:"default:false" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// Representative is a regional NGO contact person
type Representative struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Region    string `json:"region"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	PhotoURL  string `json:"photo_url"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

func (Representative) TableName() string {
	return "representatives"
}

// Affiliate is a partner organization listed on the site
type Affiliate struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	WebsiteURL string `json:"website_url"`
	LogoURL    string `json:"logo_url"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}

func (Affiliate) TableName() string {
	return "affiliates"
}
