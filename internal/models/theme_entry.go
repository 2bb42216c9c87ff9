package models

import (
	"time"
)

// ThemeEntry is one row of the key-value theme store.
// Value holds the theme colors as JSON.
type ThemeEntry struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Value string `gorm:"not null" json:"value"`
}
