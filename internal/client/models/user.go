// Package models holds the client-side mirror of the registry record as it
// appears on the wire.
package models

import (
	"fmt"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// String renders a single list row for the terminal.
func (u User) String() string {
	return fmt.Sprintf("%4d  %-24s %3d  %-32s %s",
		u.ID, u.Name, u.Age, u.Email, u.RegisteredAt.Format("2006-01-02"))
}
