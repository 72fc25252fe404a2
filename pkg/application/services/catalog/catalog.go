// Package catalog resolves per-part planning attributes from item master
// and preferred-supplier data (§4.2). The Catalog is read-only once built.
package catalog

import "github.com/devkrishnan/mrpnet/pkg/domain/entities"

// Catalog holds the resolved planning attributes for every known part.
type Catalog struct {
	items map[entities.Part]entities.Item
}

// Build resolves leadTimeDays, panSize, shrinkFactor, and eoq for every
// part present in items or leadTimes. A preferred-supplier lead time
// overrides the item master's lead time when present and positive;
// missing items default every attribute to zero (pass-through), per §4.2.
func Build(items []entities.Item, leadTimes []entities.PreferredSupplierLeadTime) *Catalog {
	resolved := make(map[entities.Part]entities.Item, len(items))
	for _, item := range items {
		resolved[item.Part] = item
	}

	for _, lt := range leadTimes {
		if lt.LeadTimeDays <= 0 {
			continue
		}
		item := resolved[lt.Part]
		item.Part = lt.Part
		item.LeadTimeDays = lt.LeadTimeDays
		resolved[lt.Part] = item
	}

	return &Catalog{items: resolved}
}

// Get returns the resolved attributes for part, or the zero-valued Item
// (leadTimeDays=0, panSize=0, shrinkFactor=0, eoq=0) when part has neither
// an item master record nor a positive preferred-supplier lead time. A part
// with only a preferred-supplier lead time gets that lead time and zero for
// the other attributes.
func (c *Catalog) Get(part entities.Part) entities.Item {
	if item, ok := c.items[part]; ok {
		return item
	}
	return entities.Item{Part: part}
}

// LeadTimeDays returns the resolved lead time for part.
func (c *Catalog) LeadTimeDays(part entities.Part) int {
	return c.Get(part).LeadTimeDays
}
