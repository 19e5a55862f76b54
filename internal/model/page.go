package model

import "strings"

// PageType represents a candidate page category.
type PageType string

const (
	PageTypeHomepage PageType = "homepage"
	PageTypeContact  PageType = "contact"
	PageTypeAbout    PageType = "about"
)

// contactMarker is the URL substring that marks a contact-style page.
const contactMarker = "/contact"

// candidatePaths lists the probe order. The homepage is always first.
var candidatePaths = []struct {
	path     string
	pageType PageType
}{
	{"", PageTypeHomepage},
	{"/contact", PageTypeContact},
	{"/about", PageTypeAbout},
}

// AllPageTypes returns the candidate page types in probe order.
func AllPageTypes() []PageType {
	types := make([]PageType, len(candidatePaths))
	for i, c := range candidatePaths {
		types[i] = c.pageType
	}
	return types
}

// CandidatePage is one URL probed for phone numbers during discovery.
type CandidatePage struct {
	URL       string   `json:"url"`
	Type      PageType `json:"type"`
	IsContact bool     `json:"is_contact"`
}

// CandidatePages builds the fixed, ordered list of pages to probe for the
// given origin: the origin itself, then /contact, then /about.
func CandidatePages(origin string) []CandidatePage {
	pages := make([]CandidatePage, 0, len(candidatePaths))
	for _, c := range candidatePaths {
		u := origin + c.path
		pages = append(pages, CandidatePage{
			URL:       u,
			Type:      c.pageType,
			IsContact: IsContactURL(u),
		})
	}
	return pages
}

// IsContactURL reports whether the URL points at a contact-style page.
func IsContactURL(u string) bool {
	return strings.Contains(u, contactMarker)
}

// CrawledPage represents a page fetched during crawling.
type CrawledPage struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	StatusCode int    `json:"status_code"`
}
