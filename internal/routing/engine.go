// Package routing decides which organizational unit handles the task a
// case event produces. One policy per case-type family plus a default; the
// engine never returns no-unit.
package routing

import (
	"context"
	"log/slog"
	"time"

	"sedrouting/internal/domain"
)

// OverrideLookup is the external organizational-assignment lookup. Only
// the P_BUC_01 policy consults it; a failed or empty lookup keeps the
// policy's own answer.
type OverrideLookup interface {
	Lookup(ctx context.Context, residencyCountry, geographicKey string, confidentiality domain.Confidentiality) (domain.OrgUnit, bool, error)
}

// Engine evaluates a case context against the per-case-type policies.
// All rules are centralized here so they stay testable in isolation.
type Engine struct {
	override OverrideLookup
	logger   *slog.Logger
	now      func() time.Time
}

// New constructs the engine. override may be nil when no geography
// assignment service is configured.
func New(override OverrideLookup, logger *slog.Logger) *Engine {
	return &Engine{
		override: override,
		logger:   logger,
		now:      time.Now,
	}
}

// Decide maps the case context to a target unit. The shared precedence is
// evaluated in order for every case type:
//
//  1. Strictly restricted confidentiality wins unconditionally.
//  2. No resolved id and no case/person reference goes to generic intake.
//  3. The case-type policy applies its own rules.
//
// The only error is a context that reaches a policy without its birth
// date, which is an invariant violation on the caller's side. Steps 1 and
// 2 need no birth date and short-circuit before the check.
func (e *Engine) Decide(ctx context.Context, c domain.CaseContext) (domain.OrgUnit, error) {
	if c.Confidentiality == domain.ConfidentialityStrict {
		return domain.UnitConfidential, nil
	}
	if !c.HasReference() {
		return domain.UnitIntakeAndDistribution, nil
	}
	if err := c.Validate(); err != nil {
		return "", err
	}

	unit := policyFor(c.CaseType)(c, e.now())

	if c.CaseType == domain.CaseTypePBuc01 && e.override != nil {
		if assigned, ok, err := e.override.Lookup(ctx, c.ResidencyCountry, c.GeographicKey, c.Confidentiality); err != nil {
			e.logger.Warn("org unit override lookup failed, keeping policy result",
				"case_type", c.CaseType,
				"unit", unit,
				"error", err,
			)
		} else if ok {
			unit = assigned
		}
	}

	return unit, nil
}
