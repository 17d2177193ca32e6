package service

import (
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		distance   float64
		zoneRadius float64
		expected   models.Severity
	}{
		{
			name:       "в центре зоны",
			distance:   0,
			zoneRadius: 1000,
			expected:   models.SeverityCritical500,
		},
		{
			name:       "граница 500 метров относится к CRITICAL_500",
			distance:   500,
			zoneRadius: 1000,
			expected:   models.SeverityCritical500,
		},
		{
			name:       "сразу за границей 500 метров",
			distance:   500.01,
			zoneRadius: 1000,
			expected:   models.SeverityCritical700,
		},
		{
			name:       "граница 700 метров относится к CRITICAL_700",
			distance:   700,
			zoneRadius: 1000,
			expected:   models.SeverityCritical700,
		},
		{
			name:       "внутри радиуса зоны за критическими порогами",
			distance:   850,
			zoneRadius: 1000,
			expected:   models.SeverityWarning,
		},
		{
			name:       "граница радиуса зоны относится к WARNING",
			distance:   1000,
			zoneRadius: 1000,
			expected:   models.SeverityWarning,
		},
		{
			name:       "вне радиуса зоны",
			distance:   1000.01,
			zoneRadius: 1000,
			expected:   models.SeverityNone,
		},
		{
			name:       "критические пороги не зависят от радиуса зоны",
			distance:   650,
			zoneRadius: 600,
			expected:   models.SeverityCritical700,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.distance, tc.zoneRadius))
		})
	}
}
