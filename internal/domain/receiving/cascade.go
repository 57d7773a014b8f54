// Package receiving holds the pure domain logic of the goods-receipt
// workflow: the brand -> part -> purchase-order cascade over the loaded
// source rows.
package receiving

import (
	"fmt"
	"sort"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

// PartOption is one entry of the second cascade stage.
type PartOption struct {
	Number string
	Name   string
}

// Label renders the option the way the entry form displays it.
func (p PartOption) Label() string {
	if p.Name == "" {
		return p.Number
	}
	return fmt.Sprintf("%s (%s)", p.Number, p.Name)
}

// Brands returns the distinct brands of the source rows, sorted.
func Brands(rows []entity.SourceRow) []string {
	seen := make(map[string]struct{}, len(rows))
	var out []string
	for _, r := range rows {
		if r.Brand == "" {
			continue
		}
		if _, ok := seen[r.Brand]; ok {
			continue
		}
		seen[r.Brand] = struct{}{}
		out = append(out, r.Brand)
	}
	sort.Strings(out)
	return out
}

// Parts returns the distinct parts of the chosen brand, sorted by part
// number. An empty brand yields no options: the stage is disabled until
// its parent is chosen.
func Parts(rows []entity.SourceRow, brand string) []PartOption {
	if brand == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []PartOption
	for _, r := range rows {
		if r.Brand != brand {
			continue
		}
		if _, ok := seen[r.PartNumber]; ok {
			continue
		}
		seen[r.PartNumber] = struct{}{}
		out = append(out, PartOption{Number: r.PartNumber, Name: r.PartName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Orders returns the distinct purchase orders matching brand+part, sorted.
// Both parents must be chosen.
func Orders(rows []entity.SourceRow, brand, partNumber string) []string {
	if brand == "" || partNumber == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if r.Brand != brand || r.PartNumber != partNumber {
			continue
		}
		if _, ok := seen[r.PurchaseOrder]; ok {
			continue
		}
		seen[r.PurchaseOrder] = struct{}{}
		out = append(out, r.PurchaseOrder)
	}
	sort.Strings(out)
	return out
}

// Selection is the user's current position in the cascade. Changing an
// upstream stage drops every downstream choice, so a stale selection can
// never outlive its parent context.
type Selection struct {
	Brand         string
	PartNumber    string
	PurchaseOrder string
}

// WithBrand picks a brand and resets part and order.
func (s Selection) WithBrand(brand string) Selection {
	return Selection{Brand: brand}
}

// WithPart picks a part under the current brand and resets the order.
func (s Selection) WithPart(partNumber string) Selection {
	return Selection{Brand: s.Brand, PartNumber: partNumber}
}

// WithOrder picks a purchase order under the current brand+part.
func (s Selection) WithOrder(po string) Selection {
	return Selection{Brand: s.Brand, PartNumber: s.PartNumber, PurchaseOrder: po}
}

// Match returns the source rows consistent with the selection (all chosen
// stages must agree).
func (s Selection) Match(rows []entity.SourceRow) []entity.SourceRow {
	var out []entity.SourceRow
	for _, r := range rows {
		if s.Brand != "" && r.Brand != s.Brand {
			continue
		}
		if s.PartNumber != "" && r.PartNumber != s.PartNumber {
			continue
		}
		if s.PurchaseOrder != "" && r.PurchaseOrder != s.PurchaseOrder {
			continue
		}
		out = append(out, r)
	}
	return out
}
