package model

import "time"

// KeyValue is a single row of the persistent key-value namespace.
type KeyValue struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name independent of the struct name.
func (KeyValue) TableName() string {
	return "key_values"
}
