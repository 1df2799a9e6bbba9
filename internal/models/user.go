package models

type User struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:varchar(255)" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
}
