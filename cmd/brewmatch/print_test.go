package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

func TestPrinters(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printMatches(&buf, domain.EquipmentProfile{MachineType: domain.MachinePourOver}, []domain.BeanMatch{{
		Bean:         domain.CoffeeBean{Name: "Yirgacheffe", Roaster: "Counter Culture Coffee", Origin: "Ethiopia", RoastLevel: domain.RoastLight, FlavorNotes: []string{"jasmine", "lemon"}},
		MatchScore:   85,
		MatchReasons: []string{"Light roast highlights origin flavors"},
		BrewTips:     []string{"Use 93C water"},
	}})
	out := buf.String()
	assert.Contains(t, out, "Setup: machine=pour-over grinder=- burrs=-")
	assert.Contains(t, out, " 1. [ 85] Yirgacheffe by Counter Culture Coffee (Ethiopia, light)")
	assert.Contains(t, out, "notes: jasmine, lemon")
	assert.Contains(t, out, "+ Light roast highlights origin flavors")
	assert.Contains(t, out, "tip: Use 93C water")

	buf.Reset()
	printMatches(&buf, domain.EquipmentProfile{}, nil)
	assert.Contains(t, buf.String(), "No beans found.")

	buf.Reset()
	printBestMatch(&buf, domain.BestMatch{Machine: &domain.EspressoMachine{Name: "Silvia", PriceRange: domain.PriceMidRange}})
	assert.Equal(t, "Machine: Silvia (mid-range)\nGrinder: none\n", buf.String())

	assert.Equal(t, "  7", scoreString(7))
	assert.Equal(t, "100", scoreString(100))
}
