package catalog

import (
	"strings"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// BeanQuery selects beans. Zero fields do not filter.
type BeanQuery struct {
	Roaster     string
	Origin      string
	FlavorNote  string
	Roast       domain.RoastLevel
	Method      domain.BrewMethod
	InStockOnly bool
}

// FilterBeans returns the beans matching q in catalog order. Roaster and
// origin match case-insensitively; the flavor note matches as a substring.
func FilterBeans(beans []domain.CoffeeBean, q BeanQuery) []domain.CoffeeBean {
	out := make([]domain.CoffeeBean, 0, len(beans))
	note := strings.ToLower(q.FlavorNote)
	for _, b := range beans {
		if q.Roaster != "" && !strings.EqualFold(b.Roaster, q.Roaster) {
			continue
		}
		if q.Origin != "" && !strings.EqualFold(b.Origin, q.Origin) {
			continue
		}
		if q.Roast != "" && b.RoastLevel != q.Roast {
			continue
		}
		if q.Method != "" && !b.SupportsMethod(q.Method) {
			continue
		}
		if q.InStockOnly && !b.InStock {
			continue
		}
		if note != "" && !hasNote(b.FlavorNotes, note) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Roasters lists distinct roasters in order of first appearance.
func Roasters(beans []domain.CoffeeBean) []string {
	seen := make(map[string]struct{}, len(beans))
	var out []string
	for _, b := range beans {
		if _, ok := seen[b.Roaster]; ok {
			continue
		}
		seen[b.Roaster] = struct{}{}
		out = append(out, b.Roaster)
	}
	return out
}

func hasNote(notes []string, lowerNeedle string) bool {
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n), lowerNeedle) {
			return true
		}
	}
	return false
}
