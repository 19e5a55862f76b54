package main

import (
	"github.com/sells-group/phone-discovery/internal/config"
	"github.com/sells-group/phone-discovery/internal/discovery"
	"github.com/sells-group/phone-discovery/internal/resolve"
	"github.com/sells-group/phone-discovery/internal/scrape"
	"github.com/sells-group/phone-discovery/pkg/duckduckgo"
)

// newDiscoveryService wires the search client, resolver and crawler from
// config. Extra options are applied after the defaults.
func newDiscoveryService(c *config.Config, opts ...discovery.Option) *discovery.Service {
	search := duckduckgo.NewClient(
		duckduckgo.WithBaseURL(c.Search.BaseURL),
		duckduckgo.WithUserAgent(c.Crawl.UserAgent),
		duckduckgo.WithTimeout(c.Search.Timeout()),
		duckduckgo.WithRateLimit(c.Search.RateLimit, 1),
	)
	resolver := resolve.NewResolver(search, c.Search.MaxResults)
	crawler := scrape.NewLocalCrawler(
		scrape.WithTimeout(c.Crawl.Timeout()),
		scrape.WithUserAgent(c.Crawl.UserAgent),
	)
	return discovery.NewService(resolver, crawler, opts...)
}
