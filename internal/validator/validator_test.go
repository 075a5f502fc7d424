package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Hex    string `json:"hex" validate:"omitempty,hexrgb"`
}

func TestValidateReportsJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Rating: 9})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "rating")
	assert.Equal(t, "This field is required", vErr.Errors["name"])
}

func TestValidateOK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sample{Name: "ok", Rating: 3}))
}

func TestHexRGBRule(t *testing.T) {
	v := New()

	valid := []string{"#000000", "#FFFFFF", "#1a2B3c"}
	for _, hex := range valid {
		assert.NoError(t, v.Validate(&sample{Name: "ok", Rating: 3, Hex: hex}), hex)
	}

	invalid := []string{"#fff", "000000", "#GGGGGG", "#12345", "#1234567", "red"}
	for _, hex := range invalid {
		err := v.Validate(&sample{Name: "ok", Rating: 3, Hex: hex})
		require.Error(t, err, hex)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "hex")
	}
}
