package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tazhibayda/interview-service/internal/domain"
)

func TestCatalogShape(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 40)

	perCategory := map[string]int{}
	difficulties := map[string]bool{"easy": true, "medium": true, "hard": true}

	for _, q := range catalog {
		assert.NotEmpty(t, q.Text)
		assert.True(t, difficulties[q.Difficulty], "difficulty %q on %q", q.Difficulty, q.Text)
		assert.NotEmpty(t, q.Tags, "question %q has no tags", q.Text)
		assert.True(t, q.ID.IsZero(), "seed entries must not pre-assign ids")
		perCategory[q.Category]++
	}

	want := map[string]int{
		domain.CategoryTechnical:  10,
		domain.CategoryBehavioral: 10,
		domain.CategoryBusiness:   10,
		domain.CategoryHealthcare: 10,
	}
	assert.Equal(t, want, perCategory)
}

func TestCatalogTextsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Catalog() {
		require.False(t, seen[q.Text], "duplicate question %q", q.Text)
		seen[q.Text] = true
	}
}
