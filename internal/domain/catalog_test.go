package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEntryValidate(t *testing.T) {
	valid := CatalogEntry{Code: "99999", Name: "Test", Credits: 4, Category: CategoryElective}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		entry CatalogEntry
	}{
		{"missing code", CatalogEntry{Name: "X", Credits: 4, Category: CategoryElective}},
		{"missing name", CatalogEntry{Code: "1", Credits: 4, Category: CategoryElective}},
		{"zero credits", CatalogEntry{Code: "1", Name: "X", Category: CategoryElective}},
		{"bad category", CatalogEntry{Code: "1", Name: "X", Credits: 4, Category: "degree"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.entry.Validate())
		})
	}
}

func TestCatalogSearch(t *testing.T) {
	cat := SeedCatalog()

	byCode := cat.Search("20476")
	require.Len(t, byCode, 1)
	assert.Equal(t, "20476", byCode[0].Code)

	byName := cat.Search("linear algebra")
	require.Len(t, byName, 2)

	assert.Len(t, cat.Search(""), len(cat))
	assert.Empty(t, cat.Search("no such course"))
}

func TestSeedCatalogIsWellFormed(t *testing.T) {
	cat := SeedCatalog()
	require.NotEmpty(t, cat)

	seen := make(map[string]bool, len(cat))
	for _, e := range cat {
		require.NoError(t, e.Validate(), "entry %s", e.Code)
		assert.False(t, seen[e.Code], "duplicate code %s", e.Code)
		seen[e.Code] = true
	}
}

func TestPlanCredits(t *testing.T) {
	plan := Plan{
		{Code: "20109", Credits: 7, Status: StatusFinished},
		{Code: "20476", Credits: 4, Status: StatusFinished},
		{Code: "20474", Credits: 7, Status: StatusActive},
		{Code: "20417", Credits: 5, Status: StatusPlanned},
	}

	assert.Equal(t, 11, plan.CreditsWithStatus(StatusFinished))
	assert.Equal(t, 7, plan.CreditsWithStatus(StatusActive))
	assert.Equal(t, 0, plan.CreditsWithStatus(StatusRegistered))
}
