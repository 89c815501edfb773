package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DonationPage is the single active CMS document behind the donation page.
// ImpactItems holds [{amount, description}] pairs; BankDetails and ContactInfo
// are free-form JSON edited wholesale from the admin form.
type DonationPage struct {
	gorm.Model
	HeaderTitle string         `json:"header_title"`
	HeaderText  string         `gorm:"type:text" json:"header_text"`
	ImpactItems datatypes.JSON `json:"impact_items"`
	BankDetails datatypes.JSON `json:"bank_details"`
	ContactInfo datatypes.JSON `json:"contact_info"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
}

func (DonationPage) TableName() string {
	return "donation_pages"
}
