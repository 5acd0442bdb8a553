package domain

import "time"

// Identity is a registered identifier together with its password digest.
type Identity struct {
	ID           string    `json:"id"`
	Identifier   string    `json:"identifier"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
