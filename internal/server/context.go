package server

import (
	"context"
	"sync"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/calendar"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/google"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/instrumentation"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/search"
)

// ServerContext holds the shared state for the MCP server: upstream clients,
// the worker pool for blocking calendar calls, and observability handles.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	calendarClient *calendar.Client
	searchClient   *search.Client
	searchConfig   search.Config

	workers *WorkerPool
	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. Upstream clients are lazily
// initialized on first use, so the server starts even when credentials are
// missing; tools report the misconfiguration per call instead.
func NewServerContext(ctx context.Context, metrics *instrumentation.Metrics, audit *instrumentation.AuditLogger) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	if audit == nil {
		audit = instrumentation.NewAuditLogger(nil)
	}

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		searchConfig: search.ConfigFromEnv(),
		workers:      NewWorkerPool(DefaultWorkerCount, metrics),
		metrics:      metrics,
		audit:        audit,
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// CalendarClient returns the Calendar client, creating and caching it on
// first use. Returns a google.AuthError when credentials are missing from
// the environment or the refresh token cannot be exchanged.
func (sc *ServerContext) CalendarClient() (*calendar.Client, error) {
	sc.mu.RLock()
	client := sc.calendarClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Re-check under the write lock
	if sc.calendarClient != nil {
		return sc.calendarClient, nil
	}

	creds := google.CredentialsFromEnv()
	client, err := calendar.NewClient(sc.ctx, creds)
	if err != nil {
		sc.metrics.RecordTokenRefresh(sc.ctx, instrumentation.RefreshResultFailure)
		return nil, err
	}
	sc.metrics.RecordTokenRefresh(sc.ctx, instrumentation.RefreshResultSuccess)

	sc.calendarClient = client
	return client, nil
}

// SetCalendarClient sets the Calendar client. Used by tests to inject fakes.
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClient = client
}

// SearchClient returns the search client, creating and caching it on first
// use. Whether an API key is configured is checked per call by the tool.
func (sc *ServerContext) SearchClient() *search.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.searchClient == nil {
		sc.searchClient = search.NewClient(sc.searchConfig)
	}
	return sc.searchClient
}

// SearchConfig returns the search configuration captured at startup.
func (sc *ServerContext) SearchConfig() search.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.searchConfig
}

// SetSearchConfig replaces the search configuration and drops any cached
// client. Used by tests.
func (sc *ServerContext) SetSearchConfig(config search.Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.searchConfig = config
	sc.searchClient = nil
}

// Workers returns the worker pool for blocking calendar calls.
func (sc *ServerContext) Workers() *WorkerPool {
	return sc.workers
}

// Metrics returns the metrics recorder.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// Audit returns the audit logger.
func (sc *ServerContext) Audit() *instrumentation.AuditLogger {
	return sc.audit
}

// GoogleConfigured reports whether Google Calendar credentials are present in
// the environment.
func (sc *ServerContext) GoogleConfigured() bool {
	return google.CredentialsFromEnv().Configured()
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
