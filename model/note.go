package model

import "time"

// Note is one uploaded study document. Filename is the collision-resolved name
// inside the upload directory, not necessarily the name the uploader chose.
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Subject   string    `gorm:"not null;size:100" json:"subject"`
	Filename  string    `gorm:"uniqueIndex;not null;size:200" json:"filename"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
