package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sells-group/phone-discovery/internal/model"
)

// mockDiscoverer returns canned results keyed by organization name.
type mockDiscoverer struct {
	mu      sync.Mutex
	results map[string]*model.DiscoveryResult
	errs    map[string]error
	calls   []Record
	// latency makes each call take this long.
	latency time.Duration
	spans   []callSpan
}

type callSpan struct {
	start, end time.Time
}

func (m *mockDiscoverer) Discover(_ context.Context, rec Record) (*model.DiscoveryResult, error) {
	start := time.Now()
	if m.latency > 0 {
		time.Sleep(m.latency)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, rec)
	m.spans = append(m.spans, callSpan{start: start, end: time.Now()})
	if err, ok := m.errs[rec.Name]; ok {
		return nil, err
	}
	if res, ok := m.results[rec.Name]; ok {
		return res, nil
	}
	return model.NotFound(rec.Name), nil
}

var errConnRefused = errors.New("connection refused")
