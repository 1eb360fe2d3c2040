// Package refdata supplies the ordered reference lists the wizard renders
// and validates against: countries, occupations, purposes, sources of
// funds and per-country identification-type sets.
package refdata

import (
	"context"
	"fmt"

	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// List names understood by Lookup.
const (
	ListCountries          = "countries"
	ListOccupations        = "occupations"
	ListPurposes           = "purposes"
	ListSourcesOfFunds     = "sources_of_funds"
	ListEntityTypes        = "entity_types"
	ListIdentificationType = "id_types"
	ListHighRiskActivities = "high_risk_activities"
	ListEndorsements       = "endorsements"
)

// Provider returns ordered reference-data lists. Per-country
// identification types are addressed as "id_types_<ALPHA2>" and fall back
// to the generic "id_types" list for countries without a dedicated set.
type Provider interface {
	Lookup(ctx context.Context, listName string) ([]types.ReferenceItem, error)
}

// Contains reports whether code appears in the named list.
func Contains(ctx context.Context, p Provider, listName, code string) (bool, error) {
	items, err := p.Lookup(ctx, listName)
	if err != nil {
		return false, fmt.Errorf("refdata lookup %q: %w", listName, err)
	}
	for _, item := range items {
		if item.Code == code {
			return true, nil
		}
	}
	return false, nil
}
