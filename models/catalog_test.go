package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsAreNonEmptyAndWellFormed(t *testing.T) {
	assert.Len(t, FintechIPOs, 16)
	assert.NotEmpty(t, FintechCompanies)

	seen := map[string]bool{}
	for _, ipo := range FintechIPOs {
		assert.NotEmpty(t, ipo.Symbol)
		assert.NotEmpty(t, ipo.Name)
		assert.Greater(t, ipo.IPOPrice, 0.0)
		assert.False(t, seen[ipo.Symbol], "duplicate IPO symbol %s", ipo.Symbol)
		seen[ipo.Symbol] = true
	}

	for _, c := range FintechCompanies {
		assert.NotEmpty(t, c.Symbol)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Sector)
	}
}

func TestSectorColorIsTotal(t *testing.T) {
	assert.Equal(t, "#1C39BB", SectorColor("Payments"))
	assert.Equal(t, "#7C3AED", SectorColor("Crypto"))
	assert.Equal(t, DefaultSectorColor, SectorColor("Interpretive Dance"))
	assert.Equal(t, DefaultSectorColor, SectorColor(""))
}
