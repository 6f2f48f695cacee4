package usecase

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/synthetic"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultSyntheticCount = 10

type MatchServiceConfig struct {
	// Credential is the upstream API key. Empty means upstream is never called.
	Credential     string
	Competitions   []string
	SyntheticCount int
	// SyntheticSeed fixes synthetic values when non-zero.
	SyntheticSeed uint64
	Meter         metric.Meter
}

type MatchService struct {
	provider       match.Provider
	clock          clockwork.Clock
	logger         *logging.Logger
	credential     string
	competitions   []string
	syntheticCount int
	syntheticSeed  uint64
	decisions      decisionRecorder
}

func NewMatchService(provider match.Provider, clock clockwork.Clock, logger *logging.Logger, cfg MatchServiceConfig) *MatchService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	count := cfg.SyntheticCount
	if count <= 0 {
		count = defaultSyntheticCount
	}

	return &MatchService{
		provider:       provider,
		clock:          clock,
		logger:         logger,
		credential:     strings.TrimSpace(cfg.Credential),
		competitions:   cfg.Competitions,
		syntheticCount: count,
		syntheticSeed:  cfg.SyntheticSeed,
		decisions:      newDecisionRecorder(cfg.Meter),
	}
}

type ListMatchesInput struct {
	League   string
	Status   string
	Limit    int
	DateFrom string
	DateTo   string
}

type MatchList struct {
	Matches []match.Match
	Source  Source
}

// ListMatches produces matches from upstream or the synthetic generator, then
// applies the query filters to whichever set was produced.
func (s *MatchService) ListMatches(ctx context.Context, input ListMatchesInput) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	query := match.Query{
		League: input.League,
		Status: input.Status,
		Limit:  input.Limit,
	}
	if query.Limit <= 0 {
		query.Limit = match.DefaultLimit
	}

	gen := s.newGenerator()
	now := s.clock.Now().UTC()

	var (
		records  []match.UpstreamMatch
		fetchErr error
	)
	if s.credential != "" {
		records, fetchErr = s.provider.FetchMatches(ctx, s.credential, match.FetchParams{
			Competitions: s.competitions,
			DateFrom:     input.DateFrom,
			DateTo:       input.DateTo,
		})
	}

	decision := decideSource(s.credential != "", fetchErr, len(records))
	s.observe(ctx, endpointMatches, decision, fetchErr)
	span.SetAttributes(attribute.String("source", string(decision.Source)), attribute.String("reason", string(decision.Reason)))

	var produced []match.Match
	if decision.Source == SourceUpstream {
		produced = make([]match.Match, 0, len(records))
		for _, rec := range records {
			produced = append(produced, normalizeMatch(rec, gen, now))
		}
	} else {
		produced = gen.Matches(s.syntheticCount)
	}

	return MatchList{
		Matches: query.Apply(produced),
		Source:  decision.Source,
	}, nil
}

// GetMatchDetail returns one match. A blank id is the only error.
func (s *MatchService) GetMatchDetail(ctx context.Context, matchID string) (match.MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchDetail")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.MatchDetail{}, ErrMatchIDRequired
	}

	gen := s.newGenerator()
	now := s.clock.Now().UTC()

	var (
		rec      match.UpstreamMatch
		found    bool
		fetchErr error
	)
	if s.credential != "" {
		rec, found, fetchErr = s.provider.FetchMatch(ctx, s.credential, matchID)
	}

	records := 0
	if found {
		records = 1
	}
	decision := decideSource(s.credential != "", fetchErr, records)
	s.observe(ctx, endpointMatchDetails, decision, fetchErr)
	span.SetAttributes(attribute.String("source", string(decision.Source)), attribute.String("reason", string(decision.Reason)))

	if decision.Source == SourceUpstream {
		return normalizeMatchDetail(rec, matchID, gen, now), nil
	}
	return gen.MatchDetail(matchID), nil
}

func (s *MatchService) newGenerator() *synthetic.Generator {
	return synthetic.New(synthetic.NewRand(s.syntheticSeed), s.clock)
}

func (s *MatchService) observe(ctx context.Context, endpoint string, d Decision, fetchErr error) {
	s.decisions.record(ctx, endpoint, d)

	if fetchErr != nil {
		s.logger.WarnContext(ctx, "upstream unavailable, serving synthetic data",
			"endpoint", endpoint,
			"reason", string(d.Reason),
			"error", fetchErr,
		)
		return
	}
	s.logger.DebugContext(ctx, "match source selected",
		"endpoint", endpoint,
		"source", string(d.Source),
		"reason", string(d.Reason),
	)
}
