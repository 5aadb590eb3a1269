package model

import "time"

// Like records that a user liked a note. The composite unique index makes the
// one-like-per-user-per-note rule a storage constraint rather than an
// application check.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_user_note,priority:1" json:"user_id"`
	NoteID    uint      `gorm:"not null;uniqueIndex:uk_user_note,priority:2" json:"note_id"`
	CreatedAt time.Time `json:"created_at"`
}
