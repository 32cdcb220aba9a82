package authgate

import (
	"io"

	"github.com/authgate/authgate/internal/audit"
)

// Audit event types emitted by the engine.
const (
	AuditLoginSuccess     = "login_success"
	AuditLoginFailure     = "login_failure"
	AuditLoginRateLimited = "login_rate_limited"
	AuditRefreshSuccess   = "refresh_success"
	AuditRefreshFailure   = "refresh_failure"
	AuditLogout           = "logout"
	AuditLogoutAll        = "logout_all"
)

// AuditEvent is a single security-relevant occurrence. Events are emitted
// asynchronously; sinks never run on the request path.
type AuditEvent = audit.Event

// AuditSink receives audit events. Implementations must be safe for
// concurrent use and must not block for long; a slow sink backs up the
// dispatcher buffer and events get dropped.
type AuditSink = audit.Sink

// NoOpAuditSink discards every event.
type NoOpAuditSink = audit.NoOpSink

// ChannelAuditSink forwards events to a Go channel, mainly for tests.
type ChannelAuditSink = audit.ChannelSink

// JSONWriterAuditSink writes one JSON object per line to an io.Writer.
type JSONWriterAuditSink = audit.JSONWriterSink

// NewChannelAuditSink returns a sink backed by a channel with the given
// buffer size. Read events from [ChannelAuditSink.Events].
func NewChannelAuditSink(buffer int) *ChannelAuditSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterAuditSink returns a sink that serializes events as JSON
// lines to w.
func NewJSONWriterAuditSink(w io.Writer) *JSONWriterAuditSink {
	return audit.NewJSONWriterSink(w)
}
