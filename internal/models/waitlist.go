package models

import "time"

// Waitlist entry statuses. These four values are the only ones ever persisted.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusContacted = "contacted"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusContacted:
		return true
	}
	return false
}

// WaitlistEntry is one accepted signup. Email is unique as stored; HandleKey
// holds the lowercased handle so the unique index enforces case-insensitive
// handle uniqueness at the store. JoinedAt and Position are set once at
// admission and never change; UpdatedAt is written only on status mutations,
// so the automatic GORM timestamp tracking is disabled.
type WaitlistEntry struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Email         string     `gorm:"not null;uniqueIndex:ux_waitlist_entries_email" json:"email"`
	TwitterHandle string     `gorm:"not null" json:"twitterHandle"`
	HandleKey     string     `gorm:"not null;uniqueIndex:ux_waitlist_entries_handle_key" json:"-"`
	Status        string     `gorm:"not null;default:pending;index" json:"status"`
	Position      int64      `gorm:"not null" json:"position"`
	Source        string     `gorm:"not null;default:direct" json:"source"`
	JoinedAt      time.Time  `gorm:"not null;index" json:"joinedAt"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

// WaitlistCounter is the sequence row behind position assignment. A single
// row (ID 1) is incremented under a row lock in the same transaction as each
// insert, which keeps positions unique and strictly increasing under
// concurrent admissions.
type WaitlistCounter struct {
	ID    uint  `gorm:"primarykey"`
	Value int64 `gorm:"not null"`
}

// WaitlistCounterID is the primary key of the only counter row.
const WaitlistCounterID uint = 1
