package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
)

func equipmentCmd() *cobra.Command {
	var (
		budget     string
		purposes   []string
		experience string
		best       bool
	)

	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "Recommend a machine and grinder for a budget",
		Long: `Recommend espresso machines and grinders.

Budgets:    starter, home-barista, serious, prosumer
Purposes:   quick-espresso, milk-drinks, pour-over, cold-brew, experimenting, full-setup
Experience: beginner, intermediate, advanced

Examples:
  brewmatch equipment --budget home-barista --purpose milk-drinks
  brewmatch equipment --budget starter --purpose pour-over --best`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := matching.ParsePreferences(budget, purposes, experience)
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if best {
				match := engine.BestMatch(prefs.Budget, prefs.Purposes)
				if asJSON {
					return printJSON(out, match)
				}
				printBestMatch(out, match)
				return nil
			}

			rec := engine.RecommendEquipment(prefs)
			if asJSON {
				return printJSON(out, rec)
			}
			printRecommendation(out, prefs, rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&budget, "budget", "b", "", "Budget tier")
	cmd.Flags().StringArrayVarP(&purposes, "purpose", "p", nil, "Purpose (repeatable)")
	cmd.Flags().StringVarP(&experience, "experience", "e", "", "Experience level")
	cmd.Flags().BoolVar(&best, "best", false, "Show only the single best machine and grinder")

	return cmd
}

func printRecommendation(w io.Writer, prefs domain.Preferences, rec domain.EquipmentRecommendation) {
	if prefs.Budget != "" {
		fmt.Fprintf(w, "Budget: %s\n", matching.BudgetLabel(prefs.Budget))
	}
	for _, p := range prefs.Purposes {
		fmt.Fprintf(w, "Purpose: %s\n", matching.PurposeLabel(p))
	}
	if prefs.ExperienceLevel != "" {
		fmt.Fprintf(w, "Experience: %s\n", matching.ExperienceLabel(prefs.ExperienceLevel))
	}
	fmt.Fprintf(w, "\n%s\n", rec.Reasoning)

	fmt.Fprintf(w, "\n%s\n", color.CyanString("Machines:"))
	for _, m := range rec.Machines {
		fmt.Fprintf(w, "  - %-32s %-10s %s\n", m.Name, m.PriceRange, m.BoilerType)
	}
	fmt.Fprintf(w, "\n%s\n", color.CyanString("Grinders:"))
	for _, g := range rec.Grinders {
		fmt.Fprintf(w, "  - %-32s %-10s %s\n", g.Name, g.PriceRange, g.BurrType)
	}
	fmt.Fprintf(w, "\n%s\n", color.CyanString("Tips:"))
	for _, t := range rec.Tips {
		fmt.Fprintf(w, "  * %s\n", t)
	}
}

func printBestMatch(w io.Writer, best domain.BestMatch) {
	if best.Machine != nil {
		fmt.Fprintf(w, "Machine: %s (%s)\n", best.Machine.Name, best.Machine.PriceRange)
	} else {
		fmt.Fprintln(w, "Machine: none")
	}
	if best.Grinder != nil {
		fmt.Fprintf(w, "Grinder: %s (%s)\n", best.Grinder.Name, best.Grinder.PriceRange)
	} else {
		fmt.Fprintln(w, "Grinder: none")
	}
}
