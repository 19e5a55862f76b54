package resolve

import (
	"context"

	"github.com/sells-group/phone-discovery/pkg/duckduckgo"
)

// mockSearcher implements Searcher for testing.
type mockSearcher struct {
	results []duckduckgo.Result
	err     error
	queries []string
}

func (m *mockSearcher) Search(_ context.Context, query string) ([]duckduckgo.Result, error) {
	m.queries = append(m.queries, query)
	return m.results, m.err
}

func results(urls ...string) []duckduckgo.Result {
	out := make([]duckduckgo.Result, len(urls))
	for i, u := range urls {
		out[i] = duckduckgo.Result{URL: u}
	}
	return out
}
