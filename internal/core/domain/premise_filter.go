package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SaleType narrows a search to listings exposed for rent or for sale.
type SaleType string

const (
	SaleTypeRent SaleType = "rent"
	SaleTypeSale SaleType = "sale"
)

// Sort orders for premise search. Every order uses the row id as the
// final tie-break so pagination stays deterministic.
const (
	OrderDefault   = "default"
	OrderPriceAsc  = "price_asc"
	OrderPriceDesc = "price_desc"
	OrderAreaAsc   = "area_asc"
	OrderAreaDesc  = "area_desc"
)

// PremiseFilter holds the optional search parameters for the premise
// list. Available=true keeps only "available" rows; false lumps every
// other status together.
type PremiseFilter struct {
	SaleType      SaleType
	Available     bool
	BuildingQuery string
	BuildingUUIDs []string
	MinPrice      *float64
	MaxPrice      *float64
	MinArea       *float64
	MaxArea       *float64
	OrderBy       string
}

// ParseBuildingUUIDs parses a comma-separated uuid list from the query
// string. Invalid fragments are skipped; an empty result is nil.
func ParseBuildingUUIDs(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := uuid.Parse(part); err != nil {
			continue
		}
		out = append(out, part)
	}
	return out
}
