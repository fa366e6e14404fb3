package models

import "time"

// User is a registry record. ID comes from the database sequence and is
// never reused after deletion; Email is unique across all records.
// A record is immutable once created: there is no update operation.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Age          int       `json:"age" db:"age"`
	Email        string    `json:"email" db:"email"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}
