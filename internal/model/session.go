package model

import "time"

type Session struct {
	ID           string
	AdminID      int
	RefreshToken string
	ExpiresAt    time.Time
}
