// Package audit provides asynchronous dispatch of structured security
// events to a pluggable sink.
//
// The dispatcher decouples engine operations from sink latency: events are
// buffered and forwarded by a single background goroutine, and the
// dispatcher either blocks or drops (counting drops) when the buffer is
// full, depending on configuration.
package audit
