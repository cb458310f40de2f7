package matching

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

type recordingObserver struct {
	mu     sync.Mutex
	calls  map[string]int
	scores []int
}

func (o *recordingObserver) ObserveCall(operation string, results int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.calls == nil {
		o.calls = map[string]int{}
	}
	o.calls[operation] += results
}

func (o *recordingObserver) ObserveScore(score int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scores = append(o.scores, score)
}

func testEngine(opts ...Option) *Engine {
	cat := domain.Catalog{
		Machines: testMachines(),
		Grinders: testGrinders(),
		Beans:    []domain.CoffeeBean{lightFilterBean(), darkMokaBean(), fullBodyEspressoBean(), mediumBean("m1")},
	}
	return NewEngine(cat, opts...)
}

func TestEngine_ObservesCalls(t *testing.T) {
	obs := &recordingObserver{}
	e := testEngine(WithObserver(obs))

	rec := e.RecommendEquipment(domain.Preferences{Budget: domain.BudgetStarter, Purposes: []domain.Purpose{domain.PurposeQuickEspresso}})
	require.Len(t, rec.Machines, 1)

	best := e.BestMatch(domain.BudgetStarter, []domain.Purpose{domain.PurposeQuickEspresso})
	require.NotNil(t, best.Machine)

	top := e.TopBeans(domain.EquipmentProfile{}, nil, nil, 2)
	require.Len(t, top, 2)

	all := e.MatchBeans(nil, domain.EquipmentProfile{}, nil, nil)
	require.Len(t, all, 4)

	cat := e.BeansByCategory(domain.EquipmentProfile{}, CategoryChocolateNutty)
	require.Len(t, cat, 3)

	assert.Equal(t, map[string]int{
		"recommend_equipment": 2,
		"best_match":          2,
		"top_beans":           2,
		"match_beans":         4,
		"beans_by_category":   3,
	}, obs.calls)
	assert.Len(t, obs.scores, 9)
}

func TestEngine_MatchBeansUsesGivenBeans(t *testing.T) {
	e := testEngine()
	got := e.MatchBeans([]domain.CoffeeBean{mediumBean("only")}, domain.EquipmentProfile{}, nil, nil)
	assert.Equal(t, []string{"only"}, matchIDs(got))

	got = e.MatchBeans([]domain.CoffeeBean{}, domain.EquipmentProfile{}, nil, nil)
	assert.Empty(t, got)
}

func TestEngine_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := testEngine(WithLogger(zap.New(core)))

	e.TopBeans(domain.EquipmentProfile{MachineType: domain.MachinePourOver}, nil, nil, 3)

	entries := logs.FilterMessage("bean match").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "top_beans", fields["operation"])
	assert.Equal(t, "pour-over", fields["machine_type"])
	assert.Equal(t, int64(3), fields["results"])
}

func TestEngine_NilOptionsKeepDefaults(t *testing.T) {
	e := testEngine(WithLogger(nil), WithObserver(nil))
	assert.NotPanics(t, func() {
		e.RecommendEquipment(domain.Preferences{})
		e.TopBeans(domain.EquipmentProfile{}, nil, nil, 0)
	})
}
