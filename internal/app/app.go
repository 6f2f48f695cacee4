package app

import (
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/external/footballdata"
	"github.com/riskibarqy/soccer-stats/internal/config"
	"github.com/riskibarqy/soccer-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

// NewHTTPServer wires the football-data client, the match service and the
// router into an http.Server.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()

	provider := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:   cfg.FootballDataBaseURL,
		UserAgent: cfg.FootballDataUserAgent,
		Timeout:   cfg.FootballDataTimeout,
		Logger:    logger,
	})

	matchSvc := usecase.NewMatchService(provider, clock, logger, usecase.MatchServiceConfig{
		Credential:     cfg.FootballDataAPIKey,
		Competitions:   cfg.FootballDataCompetitions,
		SyntheticCount: cfg.SyntheticMatchCount,
		SyntheticSeed:  cfg.SyntheticSeed,
	})
	if cfg.FootballDataAPIKey == "" {
		logger.Warn("FOOTBALL_DATA_API_KEY not set, serving synthetic data only")
	}

	handler := httpapi.NewHandler(matchSvc, clock, cfg.MatchesDefaultLimit, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
