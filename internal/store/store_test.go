package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	models "github.com/redade943-code/FabiansWelt/internal/models/record"
)

func testStore(records []models.Record) *Store {
	s := New(nil, nil, zap.NewNop().Sugar())
	s.replace(records)
	return s
}

func TestFilterByCountryPreservesOrder(t *testing.T) {
	now := time.Now()
	s := testStore([]models.Record{
		{ID: "1", CountryCode: "DE", Title: "erste", CreatedAt: now},
		{ID: "2", CountryCode: "FR", Title: "deux", CreatedAt: now.Add(-time.Minute)},
		{ID: "3", CountryCode: "DE", Title: "zweite", CreatedAt: now.Add(-2 * time.Minute)},
	})

	got := s.FilterByCountry("DE")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterByCountryNoMatches(t *testing.T) {
	s := testStore([]models.Record{
		{ID: "1", CountryCode: "DE"},
		{ID: "2", CountryCode: "FR"},
	})

	assert.Empty(t, s.FilterByCountry("JP"))
	assert.Empty(t, s.FilterByCountry(""))
}

func TestAllReturnsSnapshot(t *testing.T) {
	s := testStore([]models.Record{
		{ID: "1", CountryCode: "DE"},
		{ID: "2", CountryCode: "FR"},
	})

	all := s.All()
	assert.Len(t, all, 2)

	// Replacement swaps the slice; the previously returned one is untouched.
	s.replace([]models.Record{})
	assert.Len(t, all, 2)
	assert.Empty(t, s.All())
}
