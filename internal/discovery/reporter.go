package discovery

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/internal/metrics"
	"github.com/sells-group/phone-discovery/internal/model"
)

// NotFoundReason says which step ended a discovery without a phone.
type NotFoundReason string

const (
	ReasonNoSite  NotFoundReason = "no_site"
	ReasonNoPhone NotFoundReason = "no_phone"
)

// Trace identifies the discovery a report belongs to.
type Trace struct {
	RequestID string
	Name      string
}

// Reporter observes a discovery at its defined points. Implementations must
// not block.
type Reporter interface {
	SearchStarted(tr Trace)
	SiteResolved(tr Trace, origin string)
	PageProbed(tr Trace, page model.CandidatePage, phones int)
	PhoneFound(tr Trace, phone, source string, confidence float64)
	NotFound(tr Trace, reason NotFoundReason)
	Finished(tr Trace, result *model.DiscoveryResult, elapsed time.Duration)
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) SearchStarted(Trace)                                   {}
func (NopReporter) SiteResolved(Trace, string)                            {}
func (NopReporter) PageProbed(Trace, model.CandidatePage, int)            {}
func (NopReporter) PhoneFound(Trace, string, string, float64)             {}
func (NopReporter) NotFound(Trace, NotFoundReason)                        {}
func (NopReporter) Finished(Trace, *model.DiscoveryResult, time.Duration) {}

// ZapReporter writes reports to a zap logger.
type ZapReporter struct {
	log *zap.Logger
}

// NewZapReporter creates a ZapReporter. A nil logger uses zap.L().
func NewZapReporter(log *zap.Logger) *ZapReporter {
	if log == nil {
		log = zap.L()
	}
	return &ZapReporter{log: log.With(zap.String("component", "discovery"))}
}

func (z *ZapReporter) fields(tr Trace, extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("request_id", tr.RequestID),
		zap.String("ngo_name", tr.Name),
	}, extra...)
}

func (z *ZapReporter) SearchStarted(tr Trace) {
	z.log.Info("search started", z.fields(tr)...)
}

func (z *ZapReporter) SiteResolved(tr Trace, origin string) {
	z.log.Debug("site resolved", z.fields(tr, zap.String("origin", origin))...)
}

func (z *ZapReporter) PageProbed(tr Trace, page model.CandidatePage, phones int) {
	z.log.Debug("page probed", z.fields(tr,
		zap.String("url", page.URL),
		zap.String("page_type", string(page.Type)),
		zap.Int("phones", phones),
	)...)
}

func (z *ZapReporter) PhoneFound(tr Trace, phone, source string, confidence float64) {
	z.log.Info("phone found", z.fields(tr,
		zap.String("phone", phone),
		zap.String("source", source),
		zap.Float64("confidence", confidence),
	)...)
}

func (z *ZapReporter) NotFound(tr Trace, reason NotFoundReason) {
	z.log.Warn("no phone found", z.fields(tr, zap.String("reason", string(reason)))...)
}

func (z *ZapReporter) Finished(tr Trace, result *model.DiscoveryResult, elapsed time.Duration) {
	z.log.Debug("discovery finished", z.fields(tr,
		zap.String("status", string(result.Status)),
		zap.Duration("elapsed", elapsed),
	)...)
}

// MetricsReporter records discovery outcomes in Prometheus.
type MetricsReporter struct {
	NopReporter
	m *metrics.Metrics
}

// NewMetricsReporter creates a MetricsReporter over m and zeroes the page
// counters for every candidate page type.
func NewMetricsReporter(m *metrics.Metrics) *MetricsReporter {
	types := model.AllPageTypes()
	labels := make([]string, len(types))
	for i, pt := range types {
		labels[i] = string(pt)
	}
	m.InitPages(labels...)
	return &MetricsReporter{m: m}
}

func (r *MetricsReporter) PageProbed(_ Trace, page model.CandidatePage, phones int) {
	r.m.ObservePage(string(page.Type), phones > 0)
}

func (r *MetricsReporter) Finished(_ Trace, result *model.DiscoveryResult, elapsed time.Duration) {
	r.m.ObserveResult(string(result.Status), elapsed)
}

// multiReporter fans reports out to several reporters in order.
type multiReporter []Reporter

// MultiReporter combines reporters into one.
func MultiReporter(rs ...Reporter) Reporter {
	return multiReporter(rs)
}

func (m multiReporter) SearchStarted(tr Trace) {
	for _, r := range m {
		r.SearchStarted(tr)
	}
}

func (m multiReporter) SiteResolved(tr Trace, origin string) {
	for _, r := range m {
		r.SiteResolved(tr, origin)
	}
}

func (m multiReporter) PageProbed(tr Trace, page model.CandidatePage, phones int) {
	for _, r := range m {
		r.PageProbed(tr, page, phones)
	}
}

func (m multiReporter) PhoneFound(tr Trace, phone, source string, confidence float64) {
	for _, r := range m {
		r.PhoneFound(tr, phone, source, confidence)
	}
}

func (m multiReporter) NotFound(tr Trace, reason NotFoundReason) {
	for _, r := range m {
		r.NotFound(tr, reason)
	}
}

func (m multiReporter) Finished(tr Trace, result *model.DiscoveryResult, elapsed time.Duration) {
	for _, r := range m {
		r.Finished(tr, result, elapsed)
	}
}
