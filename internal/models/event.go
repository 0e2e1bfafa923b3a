package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Date        string     `gorm:"size:20" json:"date,omitempty"`
	Time        string     `gorm:"size:20" json:"time,omitempty"`
	Location    string     `gorm:"size:255" json:"location,omitempty"`
	SecretHash  string     `gorm:"size:100" json:"-"`
	Protected   bool       `gorm:"-" json:"protected"`
	Finished    bool       `gorm:"not null;default:false" json:"finished"`
	Attendees   []Attendee `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"attendees,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AfterFind derives the protected flag so the hash itself never leaves
// the database layer.
func (e *Event) AfterFind(tx *gorm.DB) error {
	e.Protected = e.SecretHash != ""
	return nil
}
