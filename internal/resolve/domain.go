// Package resolve picks the website origin that represents an organization.
package resolve

import "strings"

// genericMailDomains are public mailbox providers. An address on one of these
// says nothing about the organization's own website.
var genericMailDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"outlook.com": {},
}

// ExtractDomain derives a candidate website origin from an email address.
// It returns false for malformed addresses and generic mail providers.
func ExtractDomain(email string) (string, bool) {
	_, rest, ok := strings.Cut(email, "@")
	if !ok {
		return "", false
	}
	// Only the segment up to a second '@' counts.
	domain, _, _ := strings.Cut(rest, "@")
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return "", false
	}
	if _, generic := genericMailDomains[domain]; generic {
		return "", false
	}
	return "https://" + domain, true
}
