package model

import "strings"

// Status is the terminal outcome of a discovery.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	// StatusError is only produced by the batch driver when the service
	// itself could not be reached.
	StatusError Status = "error"
)

// DiscoveryRequest is the input to a single phone discovery.
type DiscoveryRequest struct {
	OrganizationName string  `json:"ngo_name"`
	Email            *string `json:"email"`
	Location         *string `json:"location"`
}

// Name returns the trimmed organization name.
func (r DiscoveryRequest) Name() string {
	return strings.TrimSpace(r.OrganizationName)
}

// EmailValue returns the email or "" when absent.
func (r DiscoveryRequest) EmailValue() string {
	if r.Email == nil {
		return ""
	}
	return *r.Email
}

// LocationValue returns the location or "" when absent.
func (r DiscoveryRequest) LocationValue() string {
	if r.Location == nil {
		return ""
	}
	return *r.Location
}

// DiscoveryResult is the outcome of a single phone discovery.
//
// Status is found iff Phone and Source are set and Confidence > 0. Use
// Found and NotFound to build values that hold this.
type DiscoveryResult struct {
	OrganizationName string  `json:"ngo_name"`
	Phone            *string `json:"phone"`
	Confidence       float64 `json:"confidence"`
	Source           *string `json:"source"`
	Status           Status  `json:"status"`
}

// NotFound returns the empty result shape for name.
func NotFound(name string) *DiscoveryResult {
	return &DiscoveryResult{
		OrganizationName: name,
		Confidence:       0.0,
		Status:           StatusNotFound,
	}
}

// Found returns a result reporting phone read from source.
func Found(name, phone string, confidence float64, source string) *DiscoveryResult {
	return &DiscoveryResult{
		OrganizationName: name,
		Phone:            &phone,
		Confidence:       confidence,
		Source:           &source,
		Status:           StatusFound,
	}
}

// Consistent reports whether the cross-field invariant holds.
func (r *DiscoveryResult) Consistent() bool {
	found := r.Status == StatusFound
	return found == (r.Phone != nil) &&
		found == (r.Source != nil) &&
		found == (r.Confidence > 0)
}

// PhoneValue returns the phone or "" when absent.
func (r *DiscoveryResult) PhoneValue() string {
	if r.Phone == nil {
		return ""
	}
	return *r.Phone
}

// SourceValue returns the source URL or "" when absent.
func (r *DiscoveryResult) SourceValue() string {
	if r.Source == nil {
		return ""
	}
	return *r.Source
}
