package usecase

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
)

type Source string

const (
	SourceUpstream  Source = "upstream"
	SourceSynthetic Source = "synthetic"
)

type Reason string

const (
	ReasonUpstream         Reason = "upstream"
	ReasonNoCredential     Reason = "no_credential"
	ReasonTransportFailure Reason = "transport_failure"
	ReasonHTTPStatus       Reason = "http_status"
	ReasonEmptyPayload     Reason = "empty_payload"
)

// Decision records which producer serves a request and why.
type Decision struct {
	Source Source
	Reason Reason
}

// decideSource picks the producer for one request. Rules are checked in
// order and the first match wins. Every upstream failure resolves to
// synthetic data; nothing is retried.
func decideSource(credentialPresent bool, fetchErr error, records int) Decision {
	switch {
	case !credentialPresent:
		return Decision{Source: SourceSynthetic, Reason: ReasonNoCredential}
	case fetchErr != nil:
		var statusErr *match.UpstreamStatusError
		if crerr.As(fetchErr, &statusErr) {
			return Decision{Source: SourceSynthetic, Reason: ReasonHTTPStatus}
		}
		return Decision{Source: SourceSynthetic, Reason: ReasonTransportFailure}
	case records == 0:
		return Decision{Source: SourceSynthetic, Reason: ReasonEmptyPayload}
	default:
		return Decision{Source: SourceUpstream, Reason: ReasonUpstream}
	}
}
