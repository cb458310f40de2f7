package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

func TestMatchBeans_PourOverVersusMokaPot(t *testing.T) {
	beans := []domain.CoffeeBean{darkMokaBean(), lightFilterBean()}
	grinder := grinderByID(t, "g-mid-manual")

	pourOver := domain.EquipmentProfile{MachineType: domain.MachinePourOver, GrinderType: domain.KindManual, BurrType: domain.BurrConical}
	got := MatchBeans(beans, pourOver, nil, grinder)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b-light", "b-dark"}, matchIDs(got))
	assert.Equal(t, 85, got[0].MatchScore)
	assert.Equal(t, 48, got[1].MatchScore)
	assert.Equal(t, []string{
		"light roast is ideal for your pour over machine",
		"Optimized for filter brewing",
		"Your Mid Manual can handle light roast precision grinding",
	}, got[0].MatchReasons)
	assert.Equal(t, []string{
		"Use 1:15 ratio (15g coffee to 225ml water)",
		"Water temperature: 92-96°C for optimal extraction",
	}, got[0].BrewTips)

	moka := domain.EquipmentProfile{MachineType: domain.MachineMokaPot, GrinderType: domain.KindManual, BurrType: domain.BurrConical}
	got = MatchBeans(beans, moka, nil, grinder)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b-dark", "b-light"}, matchIDs(got))
	assert.Equal(t, 88, got[0].MatchScore)
	assert.Equal(t, 40, got[1].MatchScore)
	assert.Equal(t, []string{
		"dark roast is ideal for your moka pot machine",
		"Optimized for moka pot brewing",
		"Great match with your Mid Manual",
		"Conical burrs bring out rich body in darker roasts",
	}, got[0].MatchReasons)
	assert.Equal(t, []string{
		"Consider adjusting grind size for moka-pot brewing",
		"Fill water to just below the valve",
		"Use medium-fine grind, not espresso fine",
	}, got[1].BrewTips)
}

func TestMatchBeans_ClampsAtOneHundred(t *testing.T) {
	profile := domain.EquipmentProfile{MachineType: domain.MachineSemiAutomatic, GrinderType: domain.KindElectric, BurrType: domain.BurrFlat}
	got := MatchBeans([]domain.CoffeeBean{fullBodyEspressoBean()}, profile,
		machineByID(t, "m-budget-thermo"), grinderByID(t, "g-premium-flat"))

	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].MatchScore)
	assert.Equal(t, []string{
		"medium light roast is ideal for your semi automatic machine",
		"Optimized for espresso brewing",
		"Your Premium Flat can handle light roast precision grinding",
		"Flat burrs excel at extracting light roast complexity",
		"High-pressure extraction enhances the full body",
	}, got[0].MatchReasons)
	assert.Equal(t, []string{
		"Use 3s pre-infusion for better extraction",
		"Aim for 18-20g dose, 36-40g yield in 25-30 seconds",
		"Grind finer and use higher temperature for light roasts",
	}, got[0].BrewTips)
}

func TestMatchBeans_GrinderTerms(t *testing.T) {
	profile := domain.EquipmentProfile{MachineType: domain.MachinePourOver}
	bean := lightFilterBean()

	t.Run("budget grinder on light roast", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{bean}, profile, nil, grinderByID(t, "g-budget-electric"))
		// 30 roast + 25 method + 10 grinder + 10 missing machine + 0 balance
		assert.Equal(t, 75, got[0].MatchScore)
		assert.Equal(t, "Light roasts benefit from a more precise grinder", got[0].BrewTips[0])
	})

	t.Run("missing grinder scores a flat ten", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{bean}, profile, nil, nil)
		assert.Equal(t, 75, got[0].MatchScore)
		assert.Len(t, got[0].MatchReasons, 2)
	})

	t.Run("burr bonus needs a grinder record", func(t *testing.T) {
		flat := domain.EquipmentProfile{MachineType: domain.MachinePourOver, BurrType: domain.BurrFlat}
		got := MatchBeans([]domain.CoffeeBean{bean}, flat, nil, nil)
		assert.Equal(t, 75, got[0].MatchScore)
		assert.NotContains(t, got[0].MatchReasons, "Flat burrs excel at extracting light roast complexity")
	})

	t.Run("prosumer grinder tier counts as quality one", func(t *testing.T) {
		g := domain.CoffeeGrinder{Name: "Tier", PriceRange: domain.PriceProsumer}
		dark := darkMokaBean()
		got := MatchBeans([]domain.CoffeeBean{dark}, domain.EquipmentProfile{MachineType: domain.MachineMokaPot}, nil, &g)
		// 25 roast + 25 method + 17 grinder + 10 missing machine + 4 balance
		assert.Equal(t, 81, got[0].MatchScore)
	})
}

func TestMatchBeans_MachineTerms(t *testing.T) {
	profile := domain.EquipmentProfile{MachineType: domain.MachineSemiAutomatic}

	t.Run("pre-infusion uses the recommended seconds", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{mediumBean("b1")}, profile, machineByID(t, "m-mid-dual"), nil)
		assert.Equal(t, "Use 7s pre-infusion for better extraction", got[0].BrewTips[0])
	})

	t.Run("no pre-infusion bonus for dark roasts", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{darkMokaBean()}, profile, machineByID(t, "m-mid-dual"), nil)
		// 5 roast + 25 method + 10 missing grinder + 0 machine + 4 balance
		assert.Equal(t, 44, got[0].MatchScore)
		assert.Equal(t, []string{"Aim for 18-20g dose, 36-40g yield in 25-30 seconds"}, got[0].BrewTips)
	})

	t.Run("low pressure skips the body bonus", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{darkMokaBean()}, profile, machineByID(t, "m-mid-hx"), nil)
		assert.NotContains(t, got[0].MatchReasons, "High-pressure extraction enhances the full body")
	})
}

func TestMatchBeans_ProfileDefaults(t *testing.T) {
	t.Run("undeclared machine is semi-automatic", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{fullBodyEspressoBean()}, domain.EquipmentProfile{}, nil, nil)
		assert.Equal(t, "medium light roast is ideal for your semi automatic machine", got[0].MatchReasons[0])
	})

	t.Run("unknown machine type prefers medium and espresso", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{mediumBean("b1")}, domain.EquipmentProfile{MachineType: "siphon"}, nil, nil)
		assert.Equal(t, []string{
			"medium roast is ideal for your siphon machine",
			"Optimized for espresso brewing",
		}, got[0].MatchReasons)
		assert.Empty(t, got[0].BrewTips)
	})

	t.Run("aeropress has no brewer tips", func(t *testing.T) {
		got := MatchBeans([]domain.CoffeeBean{lightFilterBean()}, domain.EquipmentProfile{MachineType: domain.MachineAeropress}, nil, nil)
		assert.Empty(t, got[0].BrewTips)
		assert.NotNil(t, got[0].MatchReasons)
	})
}

func TestMatchBeans_StableOrderForEqualScores(t *testing.T) {
	beans := []domain.CoffeeBean{mediumBean("first"), mediumBean("second"), mediumBean("third")}
	got := MatchBeans(beans, domain.EquipmentProfile{}, nil, nil)
	assert.Equal(t, []string{"first", "second", "third"}, matchIDs(got))
}

func TestMatchBeans_Properties(t *testing.T) {
	beans := []domain.CoffeeBean{lightFilterBean(), darkMokaBean(), fullBodyEspressoBean(), mediumBean("m1"), mediumBean("m2")}
	machines := append(testMachines(), domain.EspressoMachine{})
	grinders := append(testGrinders(), domain.CoffeeGrinder{})

	types := []domain.MachineType{"", domain.MachineSemiAutomatic, domain.MachinePourOver, domain.MachineMokaPot,
		domain.MachineFrenchPress, domain.MachineAeropress, domain.MachineSuperAutomatic, domain.MachineManualLever, "unknown"}
	burrs := []domain.BurrType{"", domain.BurrFlat, domain.BurrConical}

	for _, mt := range types {
		for _, burr := range burrs {
			for i := range machines {
				for j := range grinders {
					profile := domain.EquipmentProfile{MachineType: mt, BurrType: burr}
					got := MatchBeans(beans, profile, &machines[i], &grinders[j])
					require.Len(t, got, len(beans))
					for k, m := range got {
						assert.GreaterOrEqual(t, m.MatchScore, 0)
						assert.LessOrEqual(t, m.MatchScore, 100)
						assert.LessOrEqual(t, len(m.BrewTips), 3)
						assert.NotNil(t, m.MatchReasons)
						if k > 0 {
							assert.GreaterOrEqual(t, got[k-1].MatchScore, m.MatchScore)
						}
					}
				}
			}
		}
	}
}

func TestMatchBeans_Empty(t *testing.T) {
	got := MatchBeans(nil, domain.EquipmentProfile{}, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopBeans(t *testing.T) {
	var beans []domain.CoffeeBean
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		beans = append(beans, mediumBean(id))
	}

	assert.Len(t, TopBeans(beans, domain.EquipmentProfile{}, nil, nil, 0), 5)
	assert.Len(t, TopBeans(beans, domain.EquipmentProfile{}, nil, nil, -1), 5)
	assert.Equal(t, []string{"a", "b"}, matchIDs(TopBeans(beans, domain.EquipmentProfile{}, nil, nil, 2)))
	assert.Len(t, TopBeans(beans, domain.EquipmentProfile{}, nil, nil, 50), 7)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-3))
	assert.Equal(t, 100, clampScore(107))
	assert.Equal(t, 43, clampScore(42.5))
	assert.Equal(t, 42, clampScore(42.4))
}
