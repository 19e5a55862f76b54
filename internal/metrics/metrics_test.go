package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveResult("found", 1500*time.Millisecond)
	m.ObserveResult("found", time.Second)
	m.ObserveResult("not_found", 200*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Results.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Results.WithLabelValues("not_found")))

	count, err := testutil.GatherAndCount(reg, "phone_discovery_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestObservePage(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePage("homepage", false)
	m.ObservePage("contact", true)
	m.ObservePage("contact", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Pages.WithLabelValues("homepage", "false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Pages.WithLabelValues("contact", "true")))
}

func TestNew_SeparateRegistries(t *testing.T) {
	// Each registry gets its own instruments; no global registration.
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestInitPages(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.InitPages("homepage", "contact")

	count, err := testutil.GatherAndCount(reg, "phone_discovery_pages_probed_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Pages.WithLabelValues("contact", "true")))
}
