package matching

import (
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// Observer receives a note of every engine call. Implementations must be
// safe for concurrent use.
type Observer interface {
	ObserveCall(operation string, results int)
	ObserveScore(score int)
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, int) {}
func (nopObserver) ObserveScore(int)        {}

// Engine binds the pure recommendation functions to one catalog. It holds no
// mutable state and may be shared between goroutines.
type Engine struct {
	catalog  domain.Catalog
	logger   *zap.Logger
	observer Observer
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

func NewEngine(cat domain.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() domain.Catalog { return e.catalog }

func (e *Engine) RecommendEquipment(prefs domain.Preferences) domain.EquipmentRecommendation {
	rec := RecommendEquipment(e.catalog.Machines, e.catalog.Grinders, prefs)
	e.logger.Debug("equipment recommendation",
		zap.String("budget", string(prefs.Budget)),
		zap.Int("purposes", len(prefs.Purposes)),
		zap.String("experience", string(prefs.ExperienceLevel)),
		zap.Int("machines", len(rec.Machines)),
		zap.Int("grinders", len(rec.Grinders)),
	)
	e.observer.ObserveCall("recommend_equipment", len(rec.Machines)+len(rec.Grinders))
	return rec
}

func (e *Engine) BestMatch(budget domain.Budget, purposes []domain.Purpose) domain.BestMatch {
	best := RecommendBest(e.catalog.Machines, e.catalog.Grinders, budget, purposes)
	n := 0
	if best.Machine != nil {
		n++
	}
	if best.Grinder != nil {
		n++
	}
	e.observer.ObserveCall("best_match", n)
	return best
}

// MatchBeans scores the given beans, or the whole catalog when beans is nil.
func (e *Engine) MatchBeans(beans []domain.CoffeeBean, profile domain.EquipmentProfile, machine *domain.EspressoMachine, grinder *domain.CoffeeGrinder) []domain.BeanMatch {
	if beans == nil {
		beans = e.catalog.Beans
	}
	matches := MatchBeans(beans, profile, machine, grinder)
	e.record("match_beans", profile, matches)
	return matches
}

func (e *Engine) TopBeans(profile domain.EquipmentProfile, machine *domain.EspressoMachine, grinder *domain.CoffeeGrinder, limit int) []domain.BeanMatch {
	matches := TopBeans(e.catalog.Beans, profile, machine, grinder, limit)
	e.record("top_beans", profile, matches)
	return matches
}

func (e *Engine) BeansByCategory(profile domain.EquipmentProfile, category FlavorCategory) []domain.BeanMatch {
	matches := BeansByCategory(e.catalog.Beans, profile, category)
	e.record("beans_by_category", profile, matches)
	return matches
}

func (e *Engine) record(op string, profile domain.EquipmentProfile, matches []domain.BeanMatch) {
	e.logger.Debug("bean match",
		zap.String("operation", op),
		zap.String("machine_type", string(profile.MachineType)),
		zap.String("grinder_type", string(profile.GrinderType)),
		zap.String("burr_type", string(profile.BurrType)),
		zap.Int("results", len(matches)),
	)
	e.observer.ObserveCall(op, len(matches))
	for _, m := range matches {
		e.observer.ObserveScore(m.MatchScore)
	}
}
