package refdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticProviderLookup(t *testing.T) {
	provider := NewStaticProvider()
	ctx := context.Background()

	t.Run("known lists are ordered and non-empty", func(t *testing.T) {
		for _, list := range []string{ListCountries, ListOccupations, ListPurposes, ListSourcesOfFunds, ListEntityTypes} {
			items, err := provider.Lookup(ctx, list)
			assert.NoError(t, err)
			assert.NotEmpty(t, items, list)
		}
	})

	t.Run("per-country id types", func(t *testing.T) {
		items, err := provider.Lookup(ctx, "id_types_NG")
		assert.NoError(t, err)
		codes := make([]string, 0, len(items))
		for _, item := range items {
			codes = append(codes, item.Code)
		}
		assert.Contains(t, codes, "nin")
	})

	t.Run("unknown country falls back to default id types", func(t *testing.T) {
		items, err := provider.Lookup(ctx, "id_types_FR")
		assert.NoError(t, err)
		assert.Equal(t, defaultIDTypes, items)
	})

	t.Run("unknown list errors", func(t *testing.T) {
		_, err := provider.Lookup(ctx, "star_signs")
		assert.Error(t, err)
	})
}

func TestContains(t *testing.T) {
	provider := NewStaticProvider()
	ctx := context.Background()

	ok, err := Contains(ctx, provider, ListPurposes, "salary")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Contains(ctx, provider, ListPurposes, "smuggling")
	assert.NoError(t, err)
	assert.False(t, ok)
}
