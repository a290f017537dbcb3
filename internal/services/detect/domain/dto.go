// Package domain defines the detect workflow DTOs and ports
package domain

import histdom "harmwatch/internal/services/history/domain"

// TextInput is the payload for a raw text submission
// no required tag: empty input is legal on the wire and rejected by the service
type TextInput struct {
	Text string `json:"text" example:"I hate this."`
}

// URLInput is the payload for a URL submission
type URLInput struct {
	URL string `json:"url" example:"https://example.com/article"`
}

// Result is the record created for a submission
type Result struct {
	Record histdom.Record `json:"record"`
}
