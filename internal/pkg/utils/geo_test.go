package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(28.6139, 77.2090, 28.6139, 77.2090))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(28.6139, 77.2090, 19.0760, 72.8777)
		d2 := HaversineDistance(19.0760, 72.8777, 28.6139, 77.2090)
		assert.InEpsilon(t, d1, d2, 1e-9)
	})

	t.Run("Delhi to Mumbai", func(t *testing.T) {
		d := HaversineDistance(28.6139, 77.2090, 19.0760, 72.8777)
		assert.InDelta(t, 1148.09, d, 0.5)
	})

	t.Run("short distance", func(t *testing.T) {
		// ~0.01 deg of latitude is roughly 1.11 km
		d := HaversineDistance(28.61, 77.20, 28.62, 77.20)
		assert.InDelta(t, 1.11, d, 0.01)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(28.6139, 77.2090))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.1))
}

func TestValidateRadiusMeters(t *testing.T) {
	assert.True(t, ValidateRadiusMeters(5000))
	assert.True(t, ValidateRadiusMeters(1))
	assert.False(t, ValidateRadiusMeters(0))
	assert.False(t, ValidateRadiusMeters(-100))
	assert.False(t, ValidateRadiusMeters(50001))
}
