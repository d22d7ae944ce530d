package gemini

// OutcomeKind classifies the result of a completion attempt.
type OutcomeKind int

const (
	// Success carries generated text.
	Success OutcomeKind = iota
	// RateLimited means the provider returned 429 or an overload status.
	RateLimited
	// ServerError covers provider 5xx responses and quota errors.
	ServerError
	// Malformed means the response lacked the expected generated text.
	Malformed
	// TimedOut means the client-side deadline expired and the call was
	// cancelled.
	TimedOut
	// NetworkError covers transport, DNS, and connection failures.
	NetworkError
	// Unconfigured means no API credential is available; no network call
	// was attempted.
	Unconfigured
)

// String returns the metric/log label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case RateLimited:
		return "rate_limited"
	case ServerError:
		return "server_error"
	case Malformed:
		return "malformed"
	case TimedOut:
		return "timed_out"
	case NetworkError:
		return "network_error"
	case Unconfigured:
		return "unconfigured"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one completion request. Text is
// set only for Success.
type Outcome struct {
	Kind OutcomeKind
	Text string
}
