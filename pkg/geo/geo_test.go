package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	// Расстояние до самой себя всегда ноль
	assert.Equal(t, 0.0, Distance(55.7558, 37.6173, 55.7558, 37.6173))
	assert.Equal(t, 0.0, Distance(0, 0, 0, 0))
	assert.Equal(t, 0.0, Distance(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(55.7558, 37.6173, 59.9343, 30.3351)
	d2 := Distance(59.9343, 30.3351, 55.7558, 37.6173)
	assert.Equal(t, d1, d2)
}

func TestDistance_KnownValue(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d := Distance(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634000, d, 3000)
}

func TestDistance_ShortRange(t *testing.T) {
	// Один градус широты - около 111.19 км
	d := Distance(55.0, 37.0, 56.0, 37.0)
	assert.InDelta(t, 111195, d, 100)
}
