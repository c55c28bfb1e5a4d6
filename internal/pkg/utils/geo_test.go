package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceMeters(t *testing.T) {
	// Same point
	assert.Equal(t, 0.0, HaversineDistanceMeters(-6.2, 106.8, -6.2, 106.8))

	// Jakarta Monas to Istiqlal Mosque, roughly 700m
	d := HaversineDistanceMeters(-6.1754, 106.8272, -6.1702, 106.8310)
	assert.InDelta(t, 700, d, 100)

	// One degree of latitude is about 111km
	d = HaversineDistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "", FormatCoordinates(0, 0))
	assert.Equal(t, "-6.1754, 106.8272", FormatCoordinates(-6.1754, 106.8272))
	assert.Equal(t, "0.0000, 106.8272", FormatCoordinates(0, 106.8272))
}
