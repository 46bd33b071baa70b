package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CartID       string    `json:"cart_id"`
	CreatedAt    time.Time `json:"created_at"`
}
