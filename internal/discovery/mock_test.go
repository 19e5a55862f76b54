package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/sells-group/phone-discovery/internal/model"
)

// mockResolver implements SiteResolver for testing.
type mockResolver struct {
	mu     sync.Mutex
	origin string
	ok     bool
	calls  []resolveCall
}

type resolveCall struct {
	name, location, email string
}

func (m *mockResolver) Resolve(_ context.Context, name, location, email string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, resolveCall{name, location, email})
	return m.origin, m.ok
}

// mockCrawler implements scrape.Crawler with canned matches per URL.
// URLs missing from pages behave like an unreachable page.
type mockCrawler struct {
	mu      sync.Mutex
	pages   map[string][]string
	crawled []string
}

func (m *mockCrawler) Crawl(_ context.Context, url string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crawled = append(m.crawled, url)
	return m.pages[url]
}

// recordingReporter captures every report in order.
type recordingReporter struct {
	events   []string
	found    []string
	reasons  []NotFoundReason
	results  []*model.DiscoveryResult
	requests map[string]struct{}
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{requests: make(map[string]struct{})}
}

func (r *recordingReporter) note(tr Trace, event string) {
	r.requests[tr.RequestID] = struct{}{}
	r.events = append(r.events, event)
}

func (r *recordingReporter) SearchStarted(tr Trace) { r.note(tr, "search_started") }

func (r *recordingReporter) SiteResolved(tr Trace, _ string) { r.note(tr, "site_resolved") }

func (r *recordingReporter) PageProbed(tr Trace, page model.CandidatePage, _ int) {
	r.note(tr, "probed:"+string(page.Type))
}

func (r *recordingReporter) PhoneFound(tr Trace, phone, _ string, _ float64) {
	r.note(tr, "phone_found")
	r.found = append(r.found, phone)
}

func (r *recordingReporter) NotFound(tr Trace, reason NotFoundReason) {
	r.note(tr, "not_found")
	r.reasons = append(r.reasons, reason)
}

func (r *recordingReporter) Finished(tr Trace, result *model.DiscoveryResult, _ time.Duration) {
	r.note(tr, "finished")
	r.results = append(r.results, result)
}

func strPtr(s string) *string { return &s }
