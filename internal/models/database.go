package models

// GORM models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCheck is a liveness-ping record created by clients to verify that the
// service and its storage are reachable.
type StatusCheck struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	ClientName string    `json:"client_name" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null"`
}

// BusinessLead is a single business record produced by a search. Leads are
// written once and never updated; the only destructive operation is the bulk
// clear on the leads collection.
type BusinessLead struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string    `json:"name" gorm:"not null"`
	Address       string    `json:"address"`
	Phone         *string   `json:"phone"`
	Website       *string   `json:"website"`
	GoogleMapsURL string    `json:"google_maps_url"`
	Rating        *float64  `json:"rating"`
	ReviewCount   *int      `json:"review_count"`
	HasWebsite    bool      `json:"has_website"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}

// Database interfaces for repository pattern
type StatusCheckRepository interface {
	Create(check *StatusCheck) error
	List(limit int) ([]StatusCheck, error)
}

type BusinessLeadRepository interface {
	Create(lead *BusinessLead) error
	List(limit int) ([]BusinessLead, error)
	DeleteAll() (int64, error)
}

// TableName methods for custom table names
func (StatusCheck) TableName() string  { return "status_checks" }
func (BusinessLead) TableName() string { return "business_leads" }

// Model validation methods
func (sc *StatusCheck) Validate() error {
	if sc.ClientName == "" {
		return fmt.Errorf("client name is required")
	}
	return nil
}

func (bl *BusinessLead) Validate() error {
	if bl.Name == "" {
		return fmt.Errorf("business name is required")
	}
	if bl.HasWebsite != bl.websitePresent() {
		return fmt.Errorf("has_website must match website presence for lead %q", bl.Name)
	}
	if bl.Rating != nil && (*bl.Rating < 0 || *bl.Rating > 5) {
		return fmt.Errorf("rating out of range: %.1f", *bl.Rating)
	}
	if bl.ReviewCount != nil && *bl.ReviewCount < 0 {
		return fmt.Errorf("review count cannot be negative")
	}
	return nil
}

func (bl *BusinessLead) websitePresent() bool {
	return bl.Website != nil && *bl.Website != ""
}

// GORM hooks
func (sc *StatusCheck) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	if sc.Timestamp.IsZero() {
		sc.Timestamp = time.Now().UTC()
	}
	return sc.Validate()
}

func (bl *BusinessLead) BeforeCreate(tx *gorm.DB) error {
	if bl.ID == "" {
		bl.ID = uuid.NewString()
	}
	if bl.CreatedAt.IsZero() {
		bl.CreatedAt = time.Now().UTC()
	}
	return bl.Validate()
}
