package matching

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// ErrUnknownCategory is returned when parsing an unrecognised flavor category.
var ErrUnknownCategory = errors.New("unknown flavor category")

// FlavorCategory groups beans by the words in their flavor notes.
type FlavorCategory string

const (
	CategoryChocolateNutty FlavorCategory = "chocolate-nutty"
	CategoryFruityBright   FlavorCategory = "fruity-bright"
	CategoryFloralTea      FlavorCategory = "floral-tea"
	CategorySweetCaramel   FlavorCategory = "sweet-caramel"
	CategoryEarthySpicy    FlavorCategory = "earthy-spicy"
)

var categoryKeywords = map[FlavorCategory][]string{
	CategoryChocolateNutty: {"chocolate", "nutty", "hazelnut", "almond", "cocoa"},
	CategoryFruityBright:   {"fruity", "berry", "citrus", "tropical", "bright"},
	CategoryFloralTea:      {"floral", "tea", "jasmine", "lavender", "delicate"},
	CategorySweetCaramel:   {"caramel", "honey", "maple", "toffee", "sweet"},
	CategoryEarthySpicy:    {"earthy", "spicy", "tobacco", "cedar", "pepper"},
}

// Categories lists every flavor category in display order.
func Categories() []FlavorCategory {
	return []FlavorCategory{
		CategoryChocolateNutty,
		CategoryFruityBright,
		CategoryFloralTea,
		CategorySweetCaramel,
		CategoryEarthySpicy,
	}
}

func ParseCategory(s string) (FlavorCategory, error) {
	c := FlavorCategory(s)
	if _, ok := categoryKeywords[c]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// BeansByCategory scores the beans whose flavor notes mention any keyword of
// the category. No machine or grinder record is used. An unknown category
// selects nothing.
func BeansByCategory(beans []domain.CoffeeBean, profile domain.EquipmentProfile, category FlavorCategory) []domain.BeanMatch {
	keywords := categoryKeywords[category]
	selected := filter(beans, func(b domain.CoffeeBean) bool {
		return notesMention(b.FlavorNotes, keywords)
	})
	return MatchBeans(selected, profile, nil, nil)
}

// FlavorPreference is the coarse taste choice offered by the bean wizard.
type FlavorPreference string

const (
	PreferChocolateNutty FlavorPreference = "chocolate-nutty"
	PreferFruityBright   FlavorPreference = "fruity-bright"
	PreferBalanced       FlavorPreference = "balanced"
	PreferBoldStrong     FlavorPreference = "bold-strong"
)

var preferenceKeywords = map[FlavorPreference][]string{
	PreferChocolateNutty: {"chocolate", "nutty", "hazelnut", "cocoa", "almond", "caramel"},
	PreferFruityBright:   {"fruity", "berry", "citrus", "tropical", "bright", "apple", "cherry"},
	PreferBalanced:       {"balanced", "smooth", "clean", "mild"},
	PreferBoldStrong:     {"bold", "intense", "dark", "smoky", "tobacco", "earthy"},
}

func ParseFlavorPreference(s string) (FlavorPreference, error) {
	p := FlavorPreference(s)
	if _, ok := preferenceKeywords[p]; !ok {
		return "", fmt.Errorf("unknown flavor preference %q", s)
	}
	return p, nil
}

// FilterByFlavorPreference preselects beans for a wizard taste choice. Bold
// also takes darker roasts and balanced takes medium roasts. When nothing
// qualifies the whole collection is returned.
func FilterByFlavorPreference(beans []domain.CoffeeBean, pref FlavorPreference) []domain.CoffeeBean {
	if pref == "" {
		return beans
	}
	keywords := preferenceKeywords[pref]
	selected := filter(beans, func(b domain.CoffeeBean) bool {
		if notesMention(b.FlavorNotes, keywords) {
			return true
		}
		switch pref {
		case PreferBoldStrong:
			return b.RoastLevel.IsDark()
		case PreferBalanced:
			return b.RoastLevel == domain.RoastMedium
		}
		return false
	})
	if len(selected) == 0 {
		return beans
	}
	return selected
}

func notesMention(notes, keywords []string) bool {
	return slices.ContainsFunc(notes, func(note string) bool {
		lower := strings.ToLower(note)
		return slices.ContainsFunc(keywords, func(kw string) bool {
			return strings.Contains(lower, kw)
		})
	})
}
