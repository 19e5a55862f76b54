package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPageTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []PageType{PageTypeHomepage, PageTypeContact, PageTypeAbout}, AllPageTypes())
}

func TestCandidatePages(t *testing.T) {
	t.Parallel()

	pages := CandidatePages("https://helpinghands.org")
	require.Len(t, pages, 3)

	assert.Equal(t, CandidatePage{URL: "https://helpinghands.org", Type: PageTypeHomepage}, pages[0])
	assert.Equal(t, CandidatePage{URL: "https://helpinghands.org/contact", Type: PageTypeContact, IsContact: true}, pages[1])
	assert.Equal(t, CandidatePage{URL: "https://helpinghands.org/about", Type: PageTypeAbout}, pages[2])
}

func TestCandidatePages_FreshPerCall(t *testing.T) {
	t.Parallel()

	a := CandidatePages("https://a.org")
	a[0].URL = "mutated"
	b := CandidatePages("https://a.org")
	assert.Equal(t, "https://a.org", b[0].URL)
}

func TestIsContactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://a.org/contact", true},
		{"https://a.org/contact-us", true},
		{"https://a.org/about", false},
		{"https://a.org", false},
		// The flag follows the URL, so an origin that already carries a
		// contact path marks the homepage too.
		{"https://a.org/contact/about", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsContactURL(tt.url), tt.url)
	}
}
