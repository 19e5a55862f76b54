package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	t.Parallel()

	r := NotFound("Unknown NGO")
	assert.Equal(t, "Unknown NGO", r.OrganizationName)
	assert.Nil(t, r.Phone)
	assert.Nil(t, r.Source)
	assert.Equal(t, 0.0, r.Confidence)
	assert.Equal(t, StatusNotFound, r.Status)
	assert.True(t, r.Consistent())
}

func TestFound(t *testing.T) {
	t.Parallel()

	r := Found("Helping Hands", "9876543210", 0.8, "https://helpinghands.org/contact")
	assert.Equal(t, "9876543210", r.PhoneValue())
	assert.Equal(t, "https://helpinghands.org/contact", r.SourceValue())
	assert.Equal(t, StatusFound, r.Status)
	assert.True(t, r.Consistent())
}

func TestConsistent_Violations(t *testing.T) {
	t.Parallel()

	phone := "9876543210"
	src := "https://a.org"

	assert.False(t, (&DiscoveryResult{Status: StatusFound, Source: &src, Confidence: 0.2}).Consistent())
	assert.False(t, (&DiscoveryResult{Status: StatusFound, Phone: &phone, Source: &src}).Consistent())
	assert.False(t, (&DiscoveryResult{Status: StatusNotFound, Phone: &phone}).Consistent())
	assert.False(t, (&DiscoveryResult{Status: StatusNotFound, Confidence: 0.5}).Consistent())
}

func TestDiscoveryResult_JSONNulls(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NotFound("X"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ngo_name":"X","phone":null,"confidence":0,"source":null,"status":"not_found"}`, string(b))
}

func TestDiscoveryRequest_Accessors(t *testing.T) {
	t.Parallel()

	var req DiscoveryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ngo_name":"  Helping Hands ","location":"Hyderabad"}`), &req))

	assert.Equal(t, "Helping Hands", req.Name())
	assert.Equal(t, "", req.EmailValue())
	assert.Equal(t, "Hyderabad", req.LocationValue())
}
