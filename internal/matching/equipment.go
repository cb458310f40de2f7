package matching

import (
	"slices"
	"strings"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

const (
	maxMachines      = 4
	maxGrinders      = 3
	fallbackMachines = 3
	fallbackGrinders = 2
	maxEquipmentTips = 5
)

const defaultReasoning = "Here are some popular options to get you started."

var defaultTips = []string{
	"Consider your daily coffee consumption",
	"Quality grinder is as important as the machine",
}

// RecommendEquipment narrows the machine and grinder catalogs to what fits
// the stated budget and purposes and explains the choice.
//
// Without a budget or purposes the first catalog entries are returned with
// generic text. Purpose filters only narrow when something survives them, and
// an empty budget match falls back to the head of the catalog, so a
// non-empty catalog always yields non-empty lists.
func RecommendEquipment(machines []domain.EspressoMachine, grinders []domain.CoffeeGrinder, prefs domain.Preferences) domain.EquipmentRecommendation {
	if prefs.Budget == "" || len(prefs.Purposes) == 0 {
		return domain.EquipmentRecommendation{
			Machines:  firstN(machines, fallbackMachines),
			Grinders:  firstN(grinders, fallbackGrinders),
			Reasoning: defaultReasoning,
			Tips:      slices.Clone(defaultTips),
		}
	}

	allowed := budgetPriceRanges[prefs.Budget]
	has := func(p domain.Purpose) bool { return slices.Contains(prefs.Purposes, p) }

	recMachines := filter(machines, func(m domain.EspressoMachine) bool {
		return slices.Contains(allowed, m.PriceRange)
	})
	if has(domain.PurposeMilkDrinks) {
		recMachines = narrow(recMachines, func(m domain.EspressoMachine) bool {
			return m.BoilerType == domain.BoilerDual || m.BoilerType == domain.BoilerHeatExchanger
		})
	}
	if has(domain.PurposeQuickEspresso) {
		recMachines = narrow(recMachines, func(m domain.EspressoMachine) bool {
			return m.BoilerType == domain.BoilerThermoblock
		})
	}

	recGrinders := filter(grinders, func(g domain.CoffeeGrinder) bool {
		return slices.Contains(allowed, g.PriceRange)
	})
	if has(domain.PurposePourOver) && !has(domain.PurposeQuickEspresso) {
		recGrinders = narrow(recGrinders, func(g domain.CoffeeGrinder) bool {
			return g.Type.Kind() == domain.KindManual
		})
	}

	recMachines = firstN(recMachines, maxMachines)
	recGrinders = firstN(recGrinders, maxGrinders)
	if len(recMachines) == 0 {
		recMachines = firstN(machines, fallbackMachines)
	}
	if len(recGrinders) == 0 {
		recGrinders = firstN(grinders, fallbackGrinders)
	}

	return domain.EquipmentRecommendation{
		Machines:  recMachines,
		Grinders:  recGrinders,
		Reasoning: reasoningFor(prefs.Budget, prefs.Purposes),
		Tips:      tipsFor(prefs.Budget, prefs.Purposes, prefs.ExperienceLevel),
	}
}

// RecommendBest returns only the first machine and grinder of the
// recommendation for budget and purposes. Fields are nil for an empty catalog.
func RecommendBest(machines []domain.EspressoMachine, grinders []domain.CoffeeGrinder, budget domain.Budget, purposes []domain.Purpose) domain.BestMatch {
	rec := RecommendEquipment(machines, grinders, domain.Preferences{Budget: budget, Purposes: purposes})

	var best domain.BestMatch
	if len(rec.Machines) > 0 {
		m := rec.Machines[0]
		best.Machine = &m
	}
	if len(rec.Grinders) > 0 {
		g := rec.Grinders[0]
		best.Grinder = &g
	}
	return best
}

var budgetSentences = map[domain.Budget]string{
	domain.BudgetStarter:     "For your starter budget, we focused on reliable entry-level equipment that delivers great value.",
	domain.BudgetHomeBarista: "Your home barista budget opens up excellent mid-range options with more features and better build quality.",
	domain.BudgetSerious:     "With your serious setup budget, you can access prosumer-grade equipment with professional features.",
	domain.BudgetProsumer:    "Your prosumer budget allows for café-quality equipment that will last for years.",
}

// purposeSentences is ordered: the reasoning lists purposes in this order
// regardless of the order the user picked them.
var purposeSentences = []struct {
	purpose  domain.Purpose
	sentence string
}{
	{domain.PurposeMilkDrinks, "Since you enjoy milk-based drinks, we prioritized machines with capable steam wands."},
	{domain.PurposeQuickEspresso, "For quick morning espresso, we selected machines with fast heat-up times."},
	{domain.PurposePourOver, "For pour-over brewing, grind consistency is key, so we included versatile grinders."},
}

func reasoningFor(budget domain.Budget, purposes []domain.Purpose) string {
	var parts []string
	if s, ok := budgetSentences[budget]; ok {
		parts = append(parts, s)
	}
	for _, ps := range purposeSentences {
		if slices.Contains(purposes, ps.purpose) {
			parts = append(parts, ps.sentence)
		}
	}
	return strings.Join(parts, " ")
}

var budgetTips = map[domain.Budget][]string{
	domain.BudgetStarter: {
		"Consider buying used equipment from reputable sellers to stretch your budget.",
		"A pressurized portafilter is forgiving for beginners.",
	},
	domain.BudgetHomeBarista: {
		"Non-pressurized baskets give you more control but require precise grinding.",
		"Consider a bottomless portafilter to diagnose your shots.",
	},
	domain.BudgetSerious: {
		"Non-pressurized baskets give you more control but require precise grinding.",
		"Consider a bottomless portafilter to diagnose your shots.",
	},
	domain.BudgetProsumer: {
		"Plumb-in options can improve convenience and temperature stability.",
		"Consider a water filtration system to protect your investment.",
	},
}

func tipsFor(budget domain.Budget, purposes []domain.Purpose, level domain.ExperienceLevel) []string {
	tips := []string{
		"Invest in a quality grinder - it makes more difference than the machine.",
		"Use freshly roasted beans (within 2-4 weeks of roast date).",
	}
	tips = append(tips, budgetTips[budget]...)

	if slices.Contains(purposes, domain.PurposeMilkDrinks) {
		tips = append(tips,
			"Practice steaming with water first to save milk while learning.",
			"Whole milk (3.5% fat) is easiest to steam for beginners.",
		)
	}
	if slices.Contains(purposes, domain.PurposePourOver) {
		tips = append(tips,
			"A gooseneck kettle gives you better control for pour-over.",
			"Use a scale for consistent results.",
		)
	}
	if level == domain.ExperienceBeginner {
		tips = append(tips,
			"Don't chase perfection - enjoy the learning process!",
			"Start with a medium roast to learn extraction basics.",
		)
	}

	return firstN(tips, maxEquipmentTips)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// narrow keeps the matching items unless none match, in which case items is
// returned as is.
func narrow[T any](items []T, keep func(T) bool) []T {
	if narrowed := filter(items, keep); len(narrowed) > 0 {
		return narrowed
	}
	return items
}

// firstN copies at most n leading items into a fresh, never-nil slice.
func firstN[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
