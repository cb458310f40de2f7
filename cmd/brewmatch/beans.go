package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
)

func beansCmd() *cobra.Command {
	var (
		method      string
		machineID   string
		grinderID   string
		machineType string
		grinderType string
		burrType    string
		limit       int
		category    string
		flavor      string
	)

	cmd := &cobra.Command{
		Use:   "beans",
		Short: "Rank coffee beans for a brewing setup",
		Long: `Rank coffee beans for a machine and grinder.

The setup is either picked from the catalog (--method, --machine, --grinder)
or declared directly (--machine-type, --grinder-type, --burr-type).

Categories: chocolate-nutty, fruity-bright, floral-tea, sweet-caramel, earthy-spicy
Flavors:    chocolate-nutty, fruity-bright, balanced, bold-strong`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			cat := engine.Catalog()

			var (
				machine *domain.EspressoMachine
				grinder *domain.CoffeeGrinder
			)
			if machineID != "" {
				m, ok := cat.MachineByID(machineID)
				if !ok {
					return fmt.Errorf("machine %q not found", machineID)
				}
				machine = &m
			}
			if grinderID != "" {
				g, ok := cat.GrinderByID(grinderID)
				if !ok {
					return fmt.Errorf("grinder %q not found", grinderID)
				}
				grinder = &g
			}

			var profile domain.EquipmentProfile
			if machineType != "" || grinderType != "" || burrType != "" {
				if profile, err = matching.ParseProfile(machineType, grinderType, burrType); err != nil {
					return err
				}
			} else {
				sel, err := matching.ParseSelection(method)
				if err != nil {
					return err
				}
				profile = matching.ProjectProfile(sel, machine, grinder)
			}

			n := cfg.Matching.Resolve(limit)
			var results []domain.BeanMatch
			switch {
			case category != "":
				c, err := matching.ParseCategory(category)
				if err != nil {
					return err
				}
				results = engine.BeansByCategory(profile, c)
			case flavor != "":
				pref, err := matching.ParseFlavorPreference(flavor)
				if err != nil {
					return err
				}
				results = engine.MatchBeans(matching.FilterByFlavorPreference(cat.Beans, pref), profile, machine, grinder)
			default:
				results = engine.TopBeans(profile, machine, grinder, n)
			}
			if len(results) > n {
				results = results[:n]
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), results)
			}
			printMatches(cmd.OutOrStdout(), profile, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "Brewing device: espresso-machine, pour-over, french-press, moka-pot, aeropress")
	cmd.Flags().StringVar(&machineID, "machine", "", "Catalog machine id")
	cmd.Flags().StringVar(&grinderID, "grinder", "", "Catalog grinder id")
	cmd.Flags().StringVar(&machineType, "machine-type", "", "Declared machine type")
	cmd.Flags().StringVar(&grinderType, "grinder-type", "", "Declared grinder type: manual or electric")
	cmd.Flags().StringVar(&burrType, "burr-type", "", "Declared burr type: flat or conical")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of beans to show")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Flavor category")
	cmd.Flags().StringVar(&flavor, "flavor", "", "Wizard flavor preference")

	return cmd
}

func printMatches(w io.Writer, profile domain.EquipmentProfile, matches []domain.BeanMatch) {
	fmt.Fprintf(w, "%s machine=%s grinder=%s burrs=%s\n\n", color.CyanString("Setup:"),
		orDash(string(profile.MachineType)), orDash(string(profile.GrinderType)), orDash(string(profile.BurrType)))

	if len(matches) == 0 {
		fmt.Fprintln(w, "No beans found.")
		return
	}
	for i, m := range matches {
		fmt.Fprintf(w, "%2d. [%s] %s by %s (%s, %s)\n", i+1, scoreString(m.MatchScore),
			color.New(color.Bold).Sprint(m.Bean.Name), m.Bean.Roaster, m.Bean.Origin, m.Bean.RoastLevel)
		if len(m.Bean.FlavorNotes) > 0 {
			fmt.Fprintf(w, "      notes: %s\n", strings.Join(m.Bean.FlavorNotes, ", "))
		}
		for _, r := range m.MatchReasons {
			fmt.Fprintf(w, "      %s %s\n", color.GreenString("+"), r)
		}
		for _, t := range m.BrewTips {
			fmt.Fprintf(w, "      %s %s\n", color.YellowString("tip:"), t)
		}
	}
}

// scoreString colors a match score by band.
func scoreString(score int) string {
	s := fmt.Sprintf("%3d", score)
	switch {
	case score >= 80:
		return color.GreenString(s)
	case score >= 60:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
