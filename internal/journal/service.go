// Package journal orchestrates the handling of one case event: fetch the
// case documents, extract and aggregate person relations, resolve the
// person, reconcile legacy cases, route, and record the decision.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"sedrouting/internal/casenumber"
	"sedrouting/internal/documents"
	"sedrouting/internal/domain"
	"sedrouting/internal/journal/metrics"
	"sedrouting/internal/registry/ports"
	"sedrouting/internal/relation"
	"sedrouting/internal/routing"
	"sedrouting/internal/routing/store"
)

// Service processes case events start to finish. All state is injected;
// events are independent of each other.
type Service struct {
	fetcher    documents.Fetcher
	persons    ports.PersonRegistry
	legacy     ports.LegacyCaseLookup
	engine     *routing.Engine
	decisions  store.Store
	dispatcher *relation.Dispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer

	lookupTimeout time.Duration
	now           func() time.Time
}

// New wires the service.
func New(
	fetcher documents.Fetcher,
	persons ports.PersonRegistry,
	legacy ports.LegacyCaseLookup,
	engine *routing.Engine,
	decisions store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
	lookupTimeout time.Duration,
) *Service {
	return &Service{
		fetcher:       fetcher,
		persons:       persons,
		legacy:        legacy,
		engine:        engine,
		decisions:     decisions,
		dispatcher:    relation.NewDispatcher(logger),
		metrics:       m,
		logger:        logger,
		tracer:        otel.Tracer("sedrouting/journal"),
		lookupTimeout: lookupTimeout,
		now:           time.Now,
	}
}

// HandleEvent runs the full pipeline for one event. The returned error
// means the event should be redelivered (document API down, decision log
// write failure, or a context invariant violation); lookup failures and
// missing data degrade to "no answer" and are absorbed here.
func (s *Service) HandleEvent(ctx context.Context, ev Event, direction domain.Direction) error {
	ctx, span := s.tracer.Start(ctx, "journal.HandleEvent",
		trace.WithAttributes(
			attribute.String("case.id", ev.CaseID),
			attribute.String("case.type", ev.CaseType),
			attribute.String("document.type", ev.DocumentType),
			attribute.String("direction", string(direction)),
		))
	defer span.End()
	start := s.now()

	caseType, known := domain.ParseCaseType(ev.CaseType)
	if !known {
		s.logger.Info("unmapped case type, default policy applies",
			"case_id", ev.CaseID, "case_type", ev.CaseType)
	}

	stored, err := s.fetcher.CaseDocuments(ctx, ev.CaseID)
	if err != nil {
		s.metrics.EventsFailed.Inc()
		return err
	}

	caseDocs := make([]relation.CaseDocument, 0, len(stored))
	rawDocs := make([]*domain.Document, 0, len(stored))
	var triggering *domain.Document
	for _, d := range stored {
		caseDocs = append(caseDocs, relation.CaseDocument{ID: d.ID, Document: d.Document})
		rawDocs = append(rawDocs, d.Document)
		if d.ID == ev.DocumentID {
			triggering = d.Document
		}
	}

	relations := relation.Aggregate(s.dispatcher.Extract(caseType, caseDocs))
	s.metrics.RelationsExtracted.Add(float64(len(relations)))

	person, legacyCases := s.resolve(ctx, relations, domain.NationalID(ev.NationalID))

	candidates := casenumber.Collect(rawDocs, triggering)
	matched, _ := casenumber.Match(
		append(append([]string{}, candidates.Triggering...), candidates.AllDocuments...),
		caseType, legacyCases,
	)

	cc := s.buildContext(ev, caseType, direction, relations, person, matched)

	unit, err := s.engine.Decide(ctx, cc)
	if err != nil {
		s.metrics.EventsFailed.Inc()
		return err
	}

	decision := store.Decision{
		ID:           uuid.New(),
		CaseID:       ev.CaseID,
		CaseType:     caseType,
		DocumentID:   ev.DocumentID,
		DocumentType: ev.TriggeringType(),
		Direction:    direction,
		Unit:         unit,
		DecidedAt:    s.now(),
	}
	if err := s.decisions.Append(ctx, decision); err != nil {
		s.metrics.EventsFailed.Inc()
		return err
	}

	s.metrics.EventsHandled.WithLabelValues(string(direction)).Inc()
	s.metrics.RoutedByUnit.WithLabelValues(unit.Code()).Inc()
	s.metrics.HandleDuration.Observe(s.now().Sub(start).Seconds())

	s.logger.Info("case event routed",
		"case_id", ev.CaseID,
		"case_type", caseType,
		"document_type", ev.DocumentType,
		"direction", direction,
		"relations", len(relations),
		"identified", person != nil,
		"legacy_case", matched != nil,
		"unit", unit.Code(),
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	return nil
}

// resolve turns the aggregated relations into an identified person and
// their legacy cases. Lookups run in parallel under a shared timeout;
// any failure degrades to "no answer" rather than failing the event.
func (s *Service) resolve(ctx context.Context, relations []domain.PersonRelation, hint domain.NationalID) (*domain.PersonRecord, []domain.LegacyCase) {
	id := hint
	if id.IsNil() {
		for _, r := range relations {
			if r.Identified() {
				id = r.NationalID
				break
			}
		}
	}
	if id.IsNil() && len(relations) > 0 {
		searched, err := s.persons.Search(ctx, relations[0].Search)
		if err != nil {
			s.metrics.LookupFailures.WithLabelValues("person_search").Inc()
			s.logger.Warn("person search failed, continuing without identity", "error", err)
		}
		id = searched
	}
	if id.IsNil() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	var (
		person *domain.PersonRecord
		cases  []domain.LegacyCase
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.persons.Resolve(ctx, id)
		if err != nil {
			s.metrics.LookupFailures.WithLabelValues("person_resolve").Inc()
			s.logger.Warn("person resolution failed, continuing without registry detail", "error", err)
			return nil
		}
		person = p
		return nil
	})
	g.Go(func() error {
		c, err := s.legacy.CasesForPerson(ctx, id)
		if err != nil {
			s.metrics.LookupFailures.WithLabelValues("legacy_cases").Inc()
			s.logger.Warn("legacy case lookup failed, continuing without cases", "error", err)
			return nil
		}
		cases = c
		return nil
	})
	g.Wait()

	if person == nil {
		// Registry absence still leaves us the id itself.
		person = &domain.PersonRecord{NationalID: id}
		if birth, err := id.BirthDate(); err == nil {
			person.BirthDate = birth
		}
	}
	return person, cases
}

// buildContext assembles the immutable routing input.
func (s *Service) buildContext(
	ev Event,
	caseType domain.CaseType,
	direction domain.Direction,
	relations []domain.PersonRelation,
	person *domain.PersonRecord,
	legacyCase *domain.LegacyCase,
) domain.CaseContext {
	cc := domain.CaseContext{
		CaseType:     caseType,
		DocumentType: ev.TriggeringType(),
		Direction:    direction,
		LegacyCase:   legacyCase,
		Person:       person,
		PersonCount:  distinctIdentified(relations),
	}

	if len(relations) > 0 {
		cc.BenefitType = relations[0].BenefitHint
		cc.BirthDate = relations[0].BirthDate
	}
	if cc.BenefitType.IsNil() && legacyCase != nil {
		cc.BenefitType = legacyCase.Type
	}

	if person != nil {
		cc.NationalID = person.NationalID
		cc.Confidentiality = person.Confidentiality
		cc.ResidencyCountry = person.ResidencyCountry
		cc.GeographicKey = person.GeographicKey
		if !person.BirthDate.IsZero() {
			cc.BirthDate = person.BirthDate
		}
	}
	if cc.BirthDate.IsZero() && !cc.NationalID.IsNil() {
		if birth, err := cc.NationalID.BirthDate(); err == nil {
			cc.BirthDate = birth
		}
	}
	return cc
}

// distinctIdentified counts the distinct national ids across relations.
func distinctIdentified(relations []domain.PersonRelation) int {
	ids := make(map[domain.NationalID]struct{})
	for _, r := range relations {
		if r.Identified() {
			ids[r.NationalID] = struct{}{}
		}
	}
	return len(ids)
}
