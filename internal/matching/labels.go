package matching

import "github.com/denisok6893-rgb/brew-matching/internal/domain"

var budgetLabels = map[domain.Budget]string{
	domain.BudgetStarter:     "Getting Started ($100-300)",
	domain.BudgetHomeBarista: "Home Barista ($300-700)",
	domain.BudgetSerious:     "Serious Setup ($700-1500)",
	domain.BudgetProsumer:    "Prosumer ($1500+)",
}

var purposeLabels = map[domain.Purpose]string{
	domain.PurposeQuickEspresso: "Quick Morning Espresso",
	domain.PurposeMilkDrinks:    "Milk-Based Drinks",
	domain.PurposePourOver:      "Pour-Over & Filter",
	domain.PurposeColdBrew:      "Cold Brew",
	domain.PurposeExperimenting: "Experimenting",
	domain.PurposeFullSetup:     "Full Home Café",
}

var experienceLabels = map[domain.ExperienceLevel]string{
	domain.ExperienceBeginner:     "Just Starting Out",
	domain.ExperienceIntermediate: "Home Brewer",
	domain.ExperienceAdvanced:     "Coffee Enthusiast",
}

var categoryLabels = map[FlavorCategory]string{
	CategoryChocolateNutty: "Chocolate & Nutty",
	CategoryFruityBright:   "Fruity & Bright",
	CategoryFloralTea:      "Floral & Tea-like",
	CategorySweetCaramel:   "Sweet & Caramel",
	CategoryEarthySpicy:    "Earthy & Spicy",
}

// Label lookups fall back to the raw value.

func BudgetLabel(b domain.Budget) string { return labelOr(budgetLabels, b) }

func PurposeLabel(p domain.Purpose) string { return labelOr(purposeLabels, p) }

func ExperienceLabel(l domain.ExperienceLevel) string { return labelOr(experienceLabels, l) }

func CategoryLabel(c FlavorCategory) string { return labelOr(categoryLabels, c) }

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}
