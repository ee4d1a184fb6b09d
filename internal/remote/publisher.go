// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package remote streams engine update reports to a socket.io endpoint.
package remote

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/engine"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event name reports are emitted under.
const DefaultEvent = "scene:update"

// Config describes the socket.io endpoint.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
	// ConnectTimeout defaults to 15s.
	ConnectTimeout time.Duration
}

// Payload is the JSON body of one emitted report.
type Payload struct {
	EngineID      string   `json:"engine_id"`
	Engine        string   `json:"engine"`
	Frame         uint64   `json:"frame"`
	Executed      []string `json:"executed"`
	Skipped       int      `json:"skipped"`
	Propagated    int      `json:"propagated"`
	WeakCommitted int      `json:"weak_committed"`
	DurationUS    int64    `json:"duration_us"`
	Error         string   `json:"error,omitempty"`
}

// NewPayload flattens a report.
func NewPayload(r engine.Report) Payload {
	p := Payload{
		EngineID:      r.EngineID.String(),
		Engine:        r.Engine,
		Frame:         r.Frame,
		Executed:      r.Executed,
		Skipped:       r.Skipped,
		Propagated:    r.Propagated,
		WeakCommitted: r.WeakCommitted,
		DurationUS:    r.Duration.Microseconds(),
	}
	if p.Executed == nil {
		p.Executed = []string{}
	}
	if r.Err != nil {
		p.Error = r.Err.Error()
	}
	return p
}

// Publisher is an engine.Observer that emits every report.
type Publisher struct {
	emit   func(event string, payload Payload)
	close  func()
	event  string
	logger *slog.Logger

	mu     sync.Mutex
	sent   int
	closed bool
}

var _ engine.Observer = (*Publisher)(nil)

func newPublisher(logger *slog.Logger, event string, emit func(string, Payload), close func()) *Publisher {
	if event == "" {
		event = DefaultEvent
	}
	return &Publisher{emit: emit, close: close, event: event, logger: logger}
}

// Dial connects to cfg.URL and waits for the connection to be accepted.
func Dial(ctx context.Context, cfg Config) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", cfg.URL)

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q needs a scheme and a host", cfg.URL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Publisher connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	emit := func(event string, payload Payload) { io.Emit(event, payload) }
	return newPublisher(logger, cfg.Event, emit, func() { io.Disconnect() }), nil
}

// OnUpdate emits r. Reports arriving after Close are dropped.
func (p *Publisher) OnUpdate(r engine.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.emit(p.event, NewPayload(r))
	p.sent++
	p.logger.Debug("Report published.", "event", p.event, "frame", r.Frame)
}

// Sent counts emitted reports.
func (p *Publisher) Sent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent
}

// Close disconnects. It is safe to call more than once.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.close != nil {
		p.close()
	}
	p.logger.Info("Publisher closed.", "sent", p.sent)
}
