package models

import "gorm.io/gorm"

// CardType enum
const (
	CardStandard = "STANDARD"
	CardPremium  = "PREMIUM"
	CardDigital  = "DIGITAL"
)

// CardStatus enum
const (
	CardPending    = "PENDING"
	CardProcessing = "PROCESSING"
	CardPrinted    = "PRINTED"
	CardShipped    = "SHIPPED"
	CardDelivered  = "DELIVERED"
	CardCancelled  = "CANCELLED"
)

// CardPrintQueue represents one membership card fulfillment request
type CardPrintQueue struct {
	gorm.Model
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	Quantity        int    `gorm:"not null;default:1" json:"quantity"` // 1..100
	CardType        string `gorm:"type:varchar(20);default:'STANDARD'" json:"card_type"`
	Status          string `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	ProcessingNotes string `gorm:"type:text" json:"processing_notes"`
	TrackingNumber  string `gorm:"default:''" json:"tracking_number"`
	BatchID         string `gorm:"index;default:''" json:"batch_id"`   // shared uuid for bulk orders
	BatchName       string `gorm:"default:''" json:"batch_name"`
	IsDeleted       bool   `gorm:"default:false" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CardPrintQueue) TableName() string {
	return "card_print_queue"
}

// IsTerminalCardStatus reports whether no further transition is allowed
func IsTerminalCardStatus(status string) bool {
	return status == CardDelivered || status == CardCancelled
}

// IsValidCardStatus checks enum membership on ingestion
func IsValidCardStatus(status string) bool {
	switch status {
	case CardPending, CardProcessing, CardPrinted, CardShipped, CardDelivered, CardCancelled:
		return true
	}
	return false
}

// IsValidCardType checks enum membership on ingestion
func IsValidCardType(cardType string) bool {
	switch cardType {
	case CardStandard, CardPremium, CardDigital:
		return true
	}
	return false
}
