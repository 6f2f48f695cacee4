package httpapi

import (
	"context"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

// MatchReader is the read side of usecase.MatchService.
type MatchReader interface {
	ListMatches(ctx context.Context, input usecase.ListMatchesInput) (usecase.MatchList, error)
	GetMatchDetail(ctx context.Context, matchID string) (match.MatchDetail, error)
}

type Handler struct {
	matchService MatchReader
	clock        clockwork.Clock
	defaultLimit int
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(matchService MatchReader, clock clockwork.Clock, defaultLimit int, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if defaultLimit <= 0 {
		defaultLimit = match.DefaultLimit
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Handler{
		matchService: matchService,
		clock:        clock,
		defaultLimit: defaultLimit,
		logger:       logger,
		validator:    v,
	}
}

type listMatchesRequest struct {
	League   string `query:"league"`
	Status   string `query:"status"`
	Limit    string `query:"limit"`
	DateFrom string `query:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"dateTo" validate:"omitempty,datetime=2006-01-02"`
}

type matchDetailsRequest struct {
	MatchID string `query:"matchId" validate:"required"`
}

type matchListResponse struct {
	Matches   []match.Match `json:"matches"`
	Count     int           `json:"count"`
	Timestamp time.Time     `json:"timestamp"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Error: msgNotFound})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q := r.URL.Query()
	req := listMatchesRequest{
		League:   strings.TrimSpace(q.Get("league")),
		Status:   strings.TrimSpace(q.Get("status")),
		Limit:    strings.TrimSpace(q.Get("limit")),
		DateFrom: strings.TrimSpace(q.Get("dateFrom")),
		DateTo:   strings.TrimSpace(q.Get("dateTo")),
	}
	req = h.dropInvalidFilters(ctx, req)

	result, err := h.matchService.ListMatches(ctx, usecase.ListMatchesInput{
		League:   req.League,
		Status:   req.Status,
		Limit:    h.parseLimit(req.Limit),
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set(headerDataSource, string(result.Source))
	writeJSON(ctx, w, http.StatusOK, matchListResponse{
		Matches:   result.Matches,
		Count:     len(result.Matches),
		Timestamp: h.clock.Now().UTC(),
	})
}

func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetails")
	defer span.End()

	req := matchDetailsRequest{MatchID: strings.TrimSpace(r.URL.Query().Get("matchId"))}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, usecase.ErrMatchIDRequired)
		return
	}

	detail, err := h.matchService.GetMatchDetail(ctx, req.MatchID)
	if err != nil {
		if !crerr.Is(err, usecase.ErrInvalidInput) {
			h.logger.ErrorContext(ctx, "get match detail failed", "match_id", req.MatchID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}

// parseLimit falls back to the default for anything but a positive integer.
func (h *Handler) parseLimit(raw string) int {
	if raw == "" {
		return h.defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return h.defaultLimit
	}
	return limit
}

// dropInvalidFilters clears optional filters that fail validation. The list
// endpoint never rejects a request, so a bad date is ignored rather than
// forwarded upstream.
func (h *Handler) dropInvalidFilters(ctx context.Context, req listMatchesRequest) listMatchesRequest {
	ctx, span := startSpan(ctx, "httpapi.Handler.dropInvalidFilters")
	defer span.End()

	err := h.validator.StructCtx(ctx, req)
	if err == nil {
		return req
	}

	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) {
		h.logger.WarnContext(ctx, "list filters not validated", "error", err)
		return req
	}
	for _, fe := range fieldErrs {
		h.logger.DebugContext(ctx, "ignoring invalid list filter", "param", fe.Field(), "value", fe.Value())
		switch fe.Field() {
		case "dateFrom":
			req.DateFrom = ""
		case "dateTo":
			req.DateTo = ""
		}
	}
	return req
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", allowedMethods)
	writeJSON(r.Context(), w, http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
}
