package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberForIsDeterministic(t *testing.T) {
	date := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)

	first := NumberFor(42, date)
	second := NumberFor(42, date)

	assert.Equal(t, "INV-42-20260307", first)
	assert.Equal(t, first, second)
}

func TestNumberForIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.March, 7, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 7, 22, 45, 0, 0, time.UTC)

	assert.Equal(t, NumberFor(9, morning), NumberFor(9, evening))
}

func TestNumberForDistinctAppointments(t *testing.T) {
	date := time.Date(2026, time.March, 7, 8, 0, 0, 0, time.UTC)

	assert.NotEqual(t, NumberFor(1, date), NumberFor(2, date))
}
