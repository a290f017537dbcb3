// Package domain defines the core types and ports for the history service
package domain

import (
	"time"

	"harmwatch/internal/core/classifier"
)

// Record is one classification event. Immutable once appended; the owner is the
// session identity at creation time
type Record struct {
	Owner     string           `json:"identity" example:"judge"`
	Text      string           `json:"text" example:"I hate this."`
	Label     classifier.Label `json:"label" example:"Hate Speech"`
	CreatedAt time.Time        `json:"time" example:"2025-09-01T13:05:00Z"`
}
