package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''" json:"profile_image"`
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"default:''" json:"mobile"`
	Role                string     `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password            string     `gorm:"not null" json:"-"`
	MembershipNumber    string     `gorm:"default:''" json:"membership_number"`
	IsEmailVerified     bool       `gorm:"default:false" json:"is_email_verified"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"last_login"`
	Address             string     `json:"address"`
	City                string     `json:"city"`
	State               string     `json:"state"`
	PinCode             string     `json:"pin_code"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"is_blocked"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
