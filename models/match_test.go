package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 5, 10, 13, 45, 12, 999, time.Local)
	matchDate, matchTime := CombineDateTime(day, 19, 30)

	// Дата — всегда полночь UTC того же календарного дня.
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), matchDate)
	assert.Equal(t, time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC), matchTime)

	// Оба поля строятся из одного дня и разойтись не могут.
	assert.Equal(t, matchDate.Year(), matchTime.Year())
	assert.Equal(t, matchDate.YearDay(), matchTime.YearDay())
}

func TestGenerateSeatLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"VIP-1", "VIP-2", "VIP-3"}, GenerateSeatLabels("VIP", 3))
	assert.Equal(t, []string{"A-1"}, GenerateSeatLabels("A", 1))
	assert.Empty(t, GenerateSeatLabels("VIP", 0))
}
