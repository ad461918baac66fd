package service

//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service Notifier

import "context"

// Notifier delivers outbound mail. Callers treat it as fire-and-forget:
// delivery failures are logged, never surfaced to the requester.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
