package domain

import (
	"context"

	histdom "harmwatch/internal/services/history/domain"
)

// ServicePort runs the submit workflows
type ServicePort interface {
	SubmitText(ctx context.Context, identity, sessionID, text string) (histdom.Record, error)
	SubmitURL(ctx context.Context, identity, sessionID, url string) (histdom.Record, error)
}

// Ports bundles the detect ports for cross-module wiring
type Ports struct {
	Service ServicePort
}
