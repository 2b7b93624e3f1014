package model

import "time"

// Inquiry is a contact/event inquiry submitted through the public site.
type Inquiry struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	EventDate time.Time `json:"eventDate"`
	UserID    string    `gorm:"type:varchar(50)" json:"userId,omitempty"` // requesting user, optional
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
