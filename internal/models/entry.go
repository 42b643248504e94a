package models

import "time"

// Entry is one key/value document in the SQL-backed store.
type Entry struct {
	Key       string    `json:"key" gorm:"primaryKey;size:255"`
	Value     []byte    `json:"value" gorm:"type:bytea;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Entry) TableName() string { return "kv_entries" }
