package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/weiawesome/imei-service/pkg/log"
)

// Audit actions for imei-service.
const (
	ActionGenerate      = "imei.generate"
	ActionGenerateBatch = "imei.generate_batch"
)

// Field constants for audit entries.
const (
	FieldAction    = "action"
	FieldTransport = "transport"
)

func entry(ctx context.Context, action, transport string) *zerolog.Event {
	l := log.Ctx(ctx)
	return l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(FieldTransport, transport)
}

// Generated emits a structured audit log entry for a newly issued IMEI.
func Generated(ctx context.Context, transport, id string) {
	entry(ctx, ActionGenerate, transport).
		Str(log.FieldIMEI, id).
		Msg("IMEI generated")
}

// BatchGenerated records a batch by size only.
func BatchGenerated(ctx context.Context, transport string, count int) {
	entry(ctx, ActionGenerateBatch, transport).
		Int(log.FieldIMEICount, count).
		Msg("IMEI batch generated")
}
