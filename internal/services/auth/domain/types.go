// Package domain holds the auth types and ports
package domain

import "time"

// Session is the live authenticated context for one logged-in user
type Session struct {
	Token     string    `json:"token" example:"7b9f3c6e-1d24-4b39-9f3c-2a1d24b39f3c"`
	Identity  string    `json:"identity" example:"judge"`
	CreatedAt time.Time `json:"created_at" example:"2025-09-01T13:00:00Z"`
}
