package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMachineType(t *testing.T) {
	got, err := ParseMachineType("manual")
	require.NoError(t, err)
	assert.Equal(t, MachineManualLever, got)

	got, err = ParseMachineType("french-press")
	require.NoError(t, err)
	assert.Equal(t, MachineFrenchPress, got)

	_, err = ParseMachineType("siphon")
	assert.EqualError(t, err, `unknown machine type "siphon"`)
}

func TestParseGrinderKind(t *testing.T) {
	tests := []struct {
		in   string
		want GrinderKind
	}{
		{"manual", KindManual},
		{"electric", KindElectric},
		{"entry-electric", KindElectric},
		{"prosumer-electric", KindElectric},
		{"commercial", KindElectric},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrinderKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseGrinderKind("blade")
	assert.Error(t, err)
}

func TestParseRejectsUnknown(t *testing.T) {
	_, err := ParseBurrType("ceramic")
	assert.Error(t, err)
	_, err = ParseBudget("cheap")
	assert.Error(t, err)
	_, err = ParsePurpose("latte-art")
	assert.Error(t, err)
	_, err = ParseExperienceLevel("expert")
	assert.Error(t, err)
	_, err = ParseRoastLevel("burnt")
	assert.Error(t, err)
	_, err = ParseBrewMethod("siphon")
	assert.Error(t, err)
	_, err = ParseEquipmentKind("kettle")
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, PriceProsumer.Valid())
	assert.False(t, PriceRange("luxury").Valid())
	assert.True(t, BoilerHeatExchanger.Valid())
	assert.False(t, BoilerType("steam").Valid())
	assert.True(t, GrinderCommercial.Valid())
	assert.False(t, GrinderType("electric").Valid())
}

func TestRoastAndBeanHelpers(t *testing.T) {
	assert.True(t, RoastMediumLight.IsLight())
	assert.False(t, RoastMedium.IsLight())
	assert.False(t, RoastMedium.IsDark())
	assert.True(t, RoastMediumDark.IsDark())

	assert.Equal(t, KindManual, GrinderManual.Kind())
	assert.Equal(t, KindElectric, GrinderCommercial.Kind())

	b := CoffeeBean{BrewMethods: []BrewMethod{BrewEspresso, BrewMokaPot}}
	assert.True(t, b.SupportsMethod(BrewMokaPot))
	assert.False(t, b.SupportsMethod(BrewColdBrew))
}
