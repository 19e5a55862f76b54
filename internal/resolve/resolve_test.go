package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmailShortCircuits(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{results: results("https://other.org")}
	r := NewResolver(s, 3)

	origin, ok := r.Resolve(context.Background(), "Helping Hands", "Hyderabad", "contact@helpinghands.org")
	require.True(t, ok)
	assert.Equal(t, "https://helpinghands.org", origin)
	assert.Empty(t, s.queries, "search must not run when the email yields a domain")
}

func TestResolve_GenericEmailFallsBackToSearch(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{results: results("https://helpinghands.org/home")}
	r := NewResolver(s, 3)

	origin, ok := r.Resolve(context.Background(), "Helping Hands", "Hyderabad", "hh@gmail.com")
	require.True(t, ok)
	assert.Equal(t, "https://helpinghands.org", origin)
	assert.Equal(t, []string{"Helping Hands Hyderabad official website"}, s.queries)
}

func TestResolve_NoLocation(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{}
	r := NewResolver(s, 3)

	_, ok := r.Resolve(context.Background(), "Unknown NGO", "", "")
	assert.False(t, ok)
	assert.Equal(t, []string{"Unknown NGO  official website"}, s.queries)
}

func TestResolve_SkipsNonHTTPLinks(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{results: results("/relative", "mailto:x@y.org", "http://second.org/x")}
	origin, ok := NewResolver(s, 3).Resolve(context.Background(), "n", "l", "")
	require.True(t, ok)
	assert.Equal(t, "http://second.org", origin)
}

func TestResolve_OnlyTopResultsConsidered(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{results: results("/a", "/b", "/c", "https://fourth.org")}
	_, ok := NewResolver(s, 3).Resolve(context.Background(), "n", "l", "")
	assert.False(t, ok)
}

func TestResolve_SearchErrorAbsorbed(t *testing.T) {
	t.Parallel()

	s := &mockSearcher{err: errors.New("connection reset")}
	origin, ok := NewResolver(s, 3).Resolve(context.Background(), "n", "l", "")
	assert.False(t, ok)
	assert.Empty(t, origin)
}

func TestResolve_NilSearcher(t *testing.T) {
	t.Parallel()

	_, ok := NewResolver(nil, 0).Resolve(context.Background(), "n", "l", "bad-email")
	assert.False(t, ok)
}

func TestNewResolver_DefaultMaxResults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultMaxResults, NewResolver(nil, 0).maxResults)
	assert.Equal(t, 5, NewResolver(nil, 5).maxResults)
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"https://helpinghands.org/about/team?x=1", "https://helpinghands.org", true},
		{"HTTP://Example.ORG", "http://example.org", true},
		{"https://example.org:8443/x", "https://example.org:8443", true},
		{"ftp://example.org", "", false},
		{"//duckduckgo.com/l/?uddg=x", "", false},
		{"https://", "", false},
		{"example.org", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Origin(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
