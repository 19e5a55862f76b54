package resolve

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/pkg/duckduckgo"
)

// querySuffix is appended to every website search.
const querySuffix = "official website"

// DefaultMaxResults is how many search results are considered.
const DefaultMaxResults = 3

// Searcher looks up web pages for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]duckduckgo.Result, error)
}

// Resolver finds an organization's website origin from its email domain or,
// failing that, a web search.
type Resolver struct {
	searcher   Searcher
	maxResults int
}

// NewResolver creates a Resolver. maxResults <= 0 uses DefaultMaxResults.
// A nil searcher disables the search fallback.
func NewResolver(searcher Searcher, maxResults int) *Resolver {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Resolver{searcher: searcher, maxResults: maxResults}
}

// Resolve returns the best-guess origin for the organization, or false when
// neither the email nor the search yields one. The email domain short-circuits
// without any reachability check. Search failures are absorbed and reported
// as no result.
func (r *Resolver) Resolve(ctx context.Context, name, location, email string) (string, bool) {
	if email != "" {
		if origin, ok := ExtractDomain(email); ok {
			return origin, true
		}
	}
	return r.search(ctx, name, location)
}

func (r *Resolver) search(ctx context.Context, name, location string) (string, bool) {
	if r.searcher == nil {
		return "", false
	}

	query := BuildQuery(name, location)
	results, err := r.searcher.Search(ctx, query)
	if err != nil {
		zap.L().Debug("resolve: search failed, treating as no result",
			zap.String("query", query),
			zap.Error(err),
		)
		return "", false
	}

	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}
	for _, res := range results {
		if origin, ok := Origin(res.URL); ok {
			return origin, true
		}
	}
	return "", false
}

// BuildQuery builds the website search query for an organization.
func BuildQuery(name, location string) string {
	return name + " " + location + " " + querySuffix
}

// Origin reduces an absolute http(s) URL to scheme://host. It returns false
// for anything that is not an absolute http(s) URL with a host.
func Origin(raw string) (string, bool) {
	if !strings.Contains(raw, "http") {
		return "", false
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return "", false
	}
	return scheme + "://" + strings.ToLower(u.Host), true
}
