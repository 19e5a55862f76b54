// Package scrape fetches candidate pages and scans their visible text for
// phone numbers.
package scrape

import "context"

// Crawler fetches a single URL and returns the phone numbers on it.
//
// Crawl never returns an error: any failure is absorbed and yields an empty
// result, so one unreachable page cannot abort a discovery.
type Crawler interface {
	Crawl(ctx context.Context, url string) []string
}
