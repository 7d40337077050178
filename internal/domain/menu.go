package domain

import (
	"sort"
)

// MenuSection is one accordion entry of the public menu.
type MenuSection struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// BuildMenu applies the public display filter: only active categories, only
// active products inside them, and no section without products. Both levels
// are ordered by Order, then Name.
func BuildMenu(categories []Category, products []Product) []MenuSection {
	byCategory := make(map[string][]Product)
	for _, p := range products {
		if !p.Active {
			continue
		}
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	cats := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Active {
			cats = append(cats, c)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order < cats[j].Order
		}
		return cats[i].Name < cats[j].Name
	})

	sections := make([]MenuSection, 0, len(cats))
	for _, c := range cats {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Order != items[j].Order {
				return items[i].Order < items[j].Order
			}
			return items[i].Name < items[j].Name
		})
		sections = append(sections, MenuSection{Category: c, Products: items})
	}
	return sections
}
