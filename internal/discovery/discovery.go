// Package discovery finds a published phone number for an organization by
// resolving its website and probing a fixed set of candidate pages.
package discovery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/phone-discovery/internal/model"
	"github.com/sells-group/phone-discovery/internal/scorer"
	"github.com/sells-group/phone-discovery/internal/scrape"
)

// SiteResolver picks the website origin for an organization.
type SiteResolver interface {
	Resolve(ctx context.Context, name, location, email string) (string, bool)
}

// Option configures a Service.
type Option func(*Service)

// WithReporter sets the observer notified at each discovery step.
func WithReporter(r Reporter) Option {
	return func(s *Service) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithClock overrides the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service runs phone discoveries. It holds no per-request state and is safe
// for concurrent use when its collaborators are.
type Service struct {
	resolver SiteResolver
	crawler  scrape.Crawler
	reporter Reporter
	now      func() time.Time
}

// NewService creates a Service from its collaborators.
func NewService(resolver SiteResolver, crawler scrape.Crawler, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		crawler:  crawler,
		reporter: NopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover resolves the organization's site and probes its candidate pages
// in order (home, /contact, /about), stopping at the first page with any
// phone match. It always returns a result: every failure degrades to
// not_found.
//
//	start -> resolving_site -> not_found
//	                        -> probing_pages -> found | not_found
func (s *Service) Discover(ctx context.Context, req model.DiscoveryRequest) *model.DiscoveryResult {
	start := s.now()
	tr := Trace{RequestID: uuid.NewString(), Name: req.Name()}

	result := s.discover(ctx, tr, req)
	s.reporter.Finished(tr, result, s.now().Sub(start))
	return result
}

func (s *Service) discover(ctx context.Context, tr Trace, req model.DiscoveryRequest) *model.DiscoveryResult {
	s.reporter.SearchStarted(tr)

	origin, ok := s.resolver.Resolve(ctx, tr.Name, req.LocationValue(), req.EmailValue())
	if !ok {
		s.reporter.NotFound(tr, ReasonNoSite)
		return model.NotFound(tr.Name)
	}
	s.reporter.SiteResolved(tr, origin)

	for _, page := range model.CandidatePages(origin) {
		phones := s.crawler.Crawl(ctx, page.URL)
		s.reporter.PageProbed(tr, page, len(phones))
		if len(phones) == 0 {
			continue
		}

		confidence := scorer.Confidence(page.IsContact, len(phones))
		s.reporter.PhoneFound(tr, phones[0], page.URL, confidence)
		return model.Found(tr.Name, phones[0], confidence, page.URL)
	}

	s.reporter.NotFound(tr, ReasonNoPhone)
	return model.NotFound(tr.Name)
}
