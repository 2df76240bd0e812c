package models

import "time"

// ViewSession is the SQL row backing one open page's UI state.
type ViewSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	State     string    `gorm:"type:text;not null" json:"state"` // JSON encoded app.State
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the row is past its expiry at now.
func (s ViewSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
