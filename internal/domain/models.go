package domain

import "time"

type MachineType string

const (
	MachineManualLever    MachineType = "manual-lever"
	MachineSemiAutomatic  MachineType = "semi-automatic"
	MachineAutomatic      MachineType = "automatic"
	MachineSuperAutomatic MachineType = "super-automatic"
	MachineMokaPot        MachineType = "moka-pot"
	// Logical brewer types. They are not espresso machines but a profile
	// can name them as its brewing device.
	MachinePourOver    MachineType = "pour-over"
	MachineFrenchPress MachineType = "french-press"
	MachineAeropress   MachineType = "aeropress"
)

type PriceRange string

const (
	PriceBudget   PriceRange = "budget"
	PriceMidRange PriceRange = "mid-range"
	PricePremium  PriceRange = "premium"
	PriceProsumer PriceRange = "prosumer"
)

type BoilerType string

const (
	BoilerThermoblock   BoilerType = "thermoblock"
	BoilerHeatExchanger BoilerType = "heat-exchanger"
	BoilerDual          BoilerType = "dual"
	BoilerSingle        BoilerType = "single"
)

// GrinderType is the catalog grinder class.
type GrinderType string

const (
	GrinderManual           GrinderType = "manual"
	GrinderEntryElectric    GrinderType = "entry-electric"
	GrinderProsumerElectric GrinderType = "prosumer-electric"
	GrinderCommercial       GrinderType = "commercial"
)

// GrinderKind is the collapsed grinder class used by equipment profiles.
type GrinderKind string

const (
	KindManual   GrinderKind = "manual"
	KindElectric GrinderKind = "electric"
)

// Kind collapses a catalog grinder class into manual or electric.
func (t GrinderType) Kind() GrinderKind {
	if t == GrinderManual {
		return KindManual
	}
	return KindElectric
}

type BurrType string

const (
	BurrFlat    BurrType = "flat"
	BurrConical BurrType = "conical"
)

type RoastLevel string

const (
	RoastLight       RoastLevel = "light"
	RoastMediumLight RoastLevel = "medium-light"
	RoastMedium      RoastLevel = "medium"
	RoastMediumDark  RoastLevel = "medium-dark"
	RoastDark        RoastLevel = "dark"
)

// IsLight reports whether the roast is light or medium-light.
func (r RoastLevel) IsLight() bool {
	return r == RoastLight || r == RoastMediumLight
}

// IsDark reports whether the roast is medium-dark or dark.
func (r RoastLevel) IsDark() bool {
	return r == RoastMediumDark || r == RoastDark
}

type BrewMethod string

const (
	BrewEspresso    BrewMethod = "espresso"
	BrewFilter      BrewMethod = "filter"
	BrewFrenchPress BrewMethod = "french-press"
	BrewMokaPot     BrewMethod = "moka-pot"
	BrewColdBrew    BrewMethod = "cold-brew"
)

type ProcessMethod string

const (
	ProcessWashed    ProcessMethod = "washed"
	ProcessNatural   ProcessMethod = "natural"
	ProcessHoney     ProcessMethod = "honey"
	ProcessAnaerobic ProcessMethod = "anaerobic"
)

type Budget string

const (
	BudgetStarter     Budget = "starter"
	BudgetHomeBarista Budget = "home-barista"
	BudgetSerious     Budget = "serious"
	BudgetProsumer    Budget = "prosumer"
)

type Purpose string

const (
	PurposeQuickEspresso Purpose = "quick-espresso"
	PurposeMilkDrinks    Purpose = "milk-drinks"
	PurposePourOver      Purpose = "pour-over"
	PurposeColdBrew      Purpose = "cold-brew"
	PurposeExperimenting Purpose = "experimenting"
	PurposeFullSetup     Purpose = "full-setup"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type PreInfusion struct {
	Available bool `json:"available" yaml:"available"`
	// RecommendedSeconds is zero when the manufacturer gives no value.
	RecommendedSeconds int `json:"recommended_seconds,omitempty" yaml:"recommended_seconds,omitempty"`
}

type BrewTemperature struct {
	Celsius    int    `json:"celsius" yaml:"celsius"`
	Fahrenheit int    `json:"fahrenheit" yaml:"fahrenheit"`
	Note       string `json:"note,omitempty" yaml:"note,omitempty"`
}

type EspressoMachine struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Brand           string          `json:"brand" yaml:"brand"`
	Model           string          `json:"model,omitempty" yaml:"model,omitempty"`
	Type            MachineType     `json:"type" yaml:"type"`
	PriceRange      PriceRange      `json:"price_range" yaml:"price_range"`
	Price           float64         `json:"price,omitempty" yaml:"price,omitempty"`
	Rating          float64         `json:"rating,omitempty" yaml:"rating,omitempty"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	BoilerType      BoilerType      `json:"boiler_type" yaml:"boiler_type"`
	PumpPressure    float64         `json:"pump_pressure" yaml:"pump_pressure"`
	WaterTankMl     int             `json:"water_tank_ml,omitempty" yaml:"water_tank_ml,omitempty"`
	PortafilterSize int             `json:"portafilter_size,omitempty" yaml:"portafilter_size,omitempty"`
	Features        []string        `json:"features,omitempty" yaml:"features,omitempty"`
	BrewTemperature BrewTemperature `json:"brew_temperature" yaml:"brew_temperature"`
	PreInfusion     *PreInfusion    `json:"pre_infusion,omitempty" yaml:"pre_infusion,omitempty"`
	Tips            []string        `json:"tips,omitempty" yaml:"tips,omitempty"`
	BestFor         []string        `json:"best_for,omitempty" yaml:"best_for,omitempty"`
}

type CoffeeGrinder struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Brand         string      `json:"brand" yaml:"brand"`
	Model         string      `json:"model,omitempty" yaml:"model,omitempty"`
	Type          GrinderType `json:"type" yaml:"type"`
	BurrType      BurrType    `json:"burr_type" yaml:"burr_type"`
	BurrSize      float64     `json:"burr_size" yaml:"burr_size"`
	PriceRange    PriceRange  `json:"price_range" yaml:"price_range"`
	Price         float64     `json:"price,omitempty" yaml:"price,omitempty"`
	Rating        float64     `json:"rating,omitempty" yaml:"rating,omitempty"`
	Description   string      `json:"description,omitempty" yaml:"description,omitempty"`
	Features      []string    `json:"features,omitempty" yaml:"features,omitempty"`
	GrindSettings string      `json:"grind_settings,omitempty" yaml:"grind_settings,omitempty"`
	Retention     string      `json:"retention,omitempty" yaml:"retention,omitempty"`
	BestFor       []string    `json:"best_for,omitempty" yaml:"best_for,omitempty"`
	Tips          []string    `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// TasteProfile axes are on a 0..10 scale.
type TasteProfile struct {
	Acidity    float64 `json:"acidity" yaml:"acidity"`
	Body       float64 `json:"body" yaml:"body"`
	Sweetness  float64 `json:"sweetness" yaml:"sweetness"`
	Bitterness float64 `json:"bitterness" yaml:"bitterness"`
}

type CoffeeBean struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Roaster        string        `json:"roaster" yaml:"roaster"`
	Origin         string        `json:"origin" yaml:"origin"`
	Region         string        `json:"region,omitempty" yaml:"region,omitempty"`
	Process        ProcessMethod `json:"process,omitempty" yaml:"process,omitempty"`
	RoastLevel     RoastLevel    `json:"roast_level" yaml:"roast_level"`
	FlavorNotes    []string      `json:"flavor_notes" yaml:"flavor_notes"`
	TasteProfile   TasteProfile  `json:"taste_profile" yaml:"taste_profile"`
	Price          float64       `json:"price,omitempty" yaml:"price,omitempty"`
	Weight         int           `json:"weight,omitempty" yaml:"weight,omitempty"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	BrewMethods    []BrewMethod  `json:"brew_methods" yaml:"brew_methods"`
	RecommendedFor []string      `json:"recommended_for,omitempty" yaml:"recommended_for,omitempty"`
	AffiliateURL   string        `json:"affiliate_url,omitempty" yaml:"affiliate_url,omitempty"`
	InStock        bool          `json:"in_stock" yaml:"in_stock"`
	Rating         float64       `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount    int           `json:"review_count,omitempty" yaml:"review_count,omitempty"`
}

// SupportsMethod reports whether the bean lists m among its brew methods.
func (b CoffeeBean) SupportsMethod(m BrewMethod) bool {
	for _, bm := range b.BrewMethods {
		if bm == m {
			return true
		}
	}
	return false
}

// Catalog is the read-only reference data the engine works on.
// Slice order is significant: it is the tie-break for every ranking.
type Catalog struct {
	Machines []EspressoMachine `json:"machines" yaml:"machines"`
	Grinders []CoffeeGrinder   `json:"grinders" yaml:"grinders"`
	Beans    []CoffeeBean      `json:"beans" yaml:"beans"`
}

func (c Catalog) MachineByID(id string) (EspressoMachine, bool) {
	for _, m := range c.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return EspressoMachine{}, false
}

func (c Catalog) GrinderByID(id string) (CoffeeGrinder, bool) {
	for _, g := range c.Grinders {
		if g.ID == id {
			return g, true
		}
	}
	return CoffeeGrinder{}, false
}

func (c Catalog) BeanByID(id string) (CoffeeBean, bool) {
	for _, b := range c.Beans {
		if b.ID == id {
			return b, true
		}
	}
	return CoffeeBean{}, false
}

// Preferences is the user-profile triple the equipment filter consumes.
// Empty values mean "not stated".
type Preferences struct {
	Budget          Budget          `json:"budget"`
	Purposes        []Purpose       `json:"purposes"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
}

// EquipmentProfile is the canonical input of the bean scorer.
// Empty values mean "not declared".
type EquipmentProfile struct {
	MachineType MachineType `json:"machine_type"`
	GrinderType GrinderKind `json:"grinder_type"`
	BurrType    BurrType    `json:"burr_type"`
}

type BeanMatch struct {
	Bean         CoffeeBean `json:"bean"`
	MatchScore   int        `json:"match_score"`
	MatchReasons []string   `json:"match_reasons"`
	BrewTips     []string   `json:"brew_tips"`
}

type EquipmentRecommendation struct {
	Machines  []EspressoMachine `json:"machines"`
	Grinders  []CoffeeGrinder   `json:"grinders"`
	Reasoning string            `json:"reasoning"`
	Tips      []string          `json:"tips"`
}

// BestMatch holds the single top machine and grinder; either may be nil.
type BestMatch struct {
	Machine *EspressoMachine `json:"machine"`
	Grinder *CoffeeGrinder   `json:"grinder"`
}

type EquipmentKind string

const (
	EquipmentMachine EquipmentKind = "machine"
	EquipmentGrinder EquipmentKind = "grinder"
)

// UserEquipment is a piece of gear the user owns, either a catalog item or a custom entry.
type UserEquipment struct {
	ID              string        `json:"id"`
	CatalogID       string        `json:"catalog_id,omitempty"`
	Kind            EquipmentKind `json:"kind"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand"`
	PurchaseDate    *time.Time    `json:"purchase_date,omitempty"`
	LastMaintenance *time.Time    `json:"last_maintenance,omitempty"`
	FavoriteBeans   []string      `json:"favorite_beans"`
	Notes           string        `json:"notes,omitempty"`
	IsCustom        bool          `json:"is_custom"`
	CreatedAt       time.Time     `json:"created_at"`
}
