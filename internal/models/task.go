package models

import "time"

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Text      string     `gorm:"type:text" json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
}
