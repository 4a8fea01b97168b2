package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/monitor/repository"
	pkgLog "mediawatch-srv/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

type stubProber struct {
	name    string
	finding model.Finding
	err     error
	calls   int32
}

func (s *stubProber) Name() string { return s.name }

func (s *stubProber) Probe(_ context.Context, _ model.Contact) (model.Finding, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.finding, s.err
}

type stubDiscoverer struct {
	names []string
	err   error
}

func (s *stubDiscoverer) Name() string { return model.SourceOutletDirectory }

func (s *stubDiscoverer) Discover(_ context.Context) ([]string, error) {
	return s.names, s.err
}

type stubConfigRepo struct {
	cfg model.MonitoringConfig
	err error
}

func (s *stubConfigRepo) GetByTenant(_ context.Context, _ string) (model.MonitoringConfig, error) {
	if s.err != nil {
		return model.MonitoringConfig{}, s.err
	}
	return s.cfg, nil
}

type stubContactRepo struct {
	contacts []model.Contact
	err      error
}

func (s *stubContactRepo) ListActiveVerified(_ context.Context, _ string) ([]model.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.contacts, nil
}

type stubAlertRepo struct {
	mu    sync.Mutex
	calls []repository.BulkInsertOptions
	err   error
}

func (s *stubAlertRepo) BulkInsert(_ context.Context, opts repository.BulkInsertOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, opts)
	return s.err
}

func (s *stubAlertRepo) inserted() []model.MonitoringAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.MonitoringAlert
	for _, call := range s.calls {
		all = append(all, call.Alerts...)
	}
	return all
}

type stubOutletRepo struct {
	known     map[string]bool
	filterErr error
	markErr   error
	marked    []string
}

func (s *stubOutletRepo) FilterUnknown(_ context.Context, _ string, names []string) ([]string, error) {
	if s.filterErr != nil {
		return nil, s.filterErr
	}
	var unknown []string
	for _, name := range names {
		if !s.known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown, nil
}

func (s *stubOutletRepo) MarkKnown(_ context.Context, _ string, names []string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.marked = append(s.marked, names...)
	return nil
}

// newTestUsecase wires a usecase around stub repositories and a no-wait
// sleep that counts inter-batch pauses.
func newTestUsecase(reg Registry, configRepo *stubConfigRepo, contactRepo *stubContactRepo, alertRepo *stubAlertRepo) (*usecase, *int32) {
	uc := &usecase{
		l:           testLogger(),
		configRepo:  configRepo,
		contactRepo: contactRepo,
		alertRepo:   alertRepo,
		registry:    reg,
		batchSize:   defaultBatchSize,
		batchDelay:  time.Millisecond,
	}
	var pauses int32
	uc.sleep = func(_ context.Context, _ time.Duration) {
		atomic.AddInt32(&pauses, 1)
	}
	return uc, &pauses
}
