// Package domain defines the report generation contracts
package domain

import "context"

// Filename is the fixed download name for generated reports
const Filename = "harm_report.pdf"

// GeneratorPort renders a session's history into a PDF document
type GeneratorPort interface {
	Generate(ctx context.Context, identity, sessionID string) ([]byte, error)
}

// Ports bundles the report ports for cross-module wiring
type Ports struct {
	Generator GeneratorPort
}
