// Package plan is the engine facade: it orchestrates the reference data,
// predictors, cost optimizer, risk assessor, benefit calculator and
// cash-flow projector into a single synchronous plan generation call.
package plan

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"agri_planner/pkg/core/cashflow"
	"agri_planner/pkg/core/costs"
	"agri_planner/pkg/core/predict"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/core/risk"
	"agri_planner/pkg/core/schemes"
	"agri_planner/pkg/models"
)

// Bundle is the complete plan for one request. It is plain structured
// data end to end so callers can serialize it as-is.
type Bundle struct {
	Profile         models.FarmProfile      `json:"profile"`
	Yield           predict.YieldPrediction `json:"yield_prediction"`
	Price           predict.PricePrediction `json:"price_prediction"`
	Costs           costs.Optimization      `json:"cost_optimization"`
	Risk            risk.Assessment         `json:"risk_assessment"`
	Benefits        schemes.Summary         `json:"government_benefits"`
	CashFlow        cashflow.Projection     `json:"cash_flow_projection"`
	Loan            *cashflow.LoanSchedule  `json:"loan_schedule,omitempty"`
	Recommendations []string                `json:"recommendations"`
	GeneratedAt     time.Time               `json:"generated_at"`
}

// Working-capital loan terms used when the profile carries a loan amount:
// the standard KCC crop-loan rate, the effective rate after the
// prompt-repayment subvention, and a single crop-cycle tenure.
const (
	loanRateStandard = 0.07
	loanRateKCC      = 0.04
	loanTenureMonths = 12
)

// Engine generates financial plans. It holds only immutable reference
// tables plus a guarded random source, so a single instance serves all
// callers; construct once at startup and inject.
type Engine struct {
	ref *refdata.Store

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects a deterministic random source. Production uses the
// default time-seeded source; tests pin a seed to make the variance
// draws reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock overrides the projection anchor clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine over a reference store.
func NewEngine(ref *refdata.Store, opts ...Option) *Engine {
	e := &Engine{
		ref: ref,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateFinancialPlan runs the full pipeline for one profile. The only
// error paths are the input-contract violations (nil profile, empty crop,
// non-positive land size); reference-data misses never fail, they fall
// back to default rows.
func (e *Engine) GenerateFinancialPlan(p *models.FarmProfile) (*Bundle, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid farm profile: %w", err)
	}

	// Work on a normalized copy; the caller's record stays untouched.
	profile := *p
	profile.Normalize()

	// math/rand sources are not safe for concurrent use; serialize the
	// draws. The whole pipeline runs in microseconds, so one lock around
	// the computation is cheaper than per-call source construction.
	e.mu.Lock()
	defer e.mu.Unlock()

	yield := predict.PredictYield(e.ref, e.rng, profile.State, profile.PrimaryCrop, profile.LandSize, profile.IrrigationMethod)
	price := predict.PredictPrice(e.ref, e.rng, profile.PrimaryCrop, profile.State, profile.Location)

	optimization := costs.Optimize(e.ref, profile.PrimaryCrop, profile.LandSize, costs.Inputs{
		Seed:       profile.SeedCost,
		Fertilizer: profile.FertilizerCost,
		Pesticide:  profile.PesticideCost,
		Labor:      profile.LaborCost,
	})

	assessment := risk.Assess(e.ref, profile.State, profile.PrimaryCrop)
	benefits := schemes.Calculate(&profile)
	projection := cashflow.Project(e.ref, &profile, yield, price, e.now())

	bundle := &Bundle{
		Profile:     profile,
		Yield:       yield,
		Price:       price,
		Costs:       optimization,
		Risk:        assessment,
		Benefits:    benefits,
		CashFlow:    projection,
		GeneratedAt: e.now(),
	}

	if profile.LoanAmount > 0 {
		rate := loanRateStandard
		if profile.KCCHolder {
			rate = loanRateKCC
		}
		schedule := cashflow.Amortize(profile.LoanAmount, rate, loanTenureMonths)
		bundle.Loan = &schedule
	}

	bundle.Recommendations = aggregateRecommendations(bundle)
	return bundle, nil
}

// ReferenceData exposes the engine's reference store to collaborators
// that render forms or reports.
func (e *Engine) ReferenceData() *refdata.Store {
	return e.ref
}
