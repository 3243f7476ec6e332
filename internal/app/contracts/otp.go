package contracts

import "context"

// OTPGateway abstracts the SMS verification provider. Implementations must
// not let provider response shapes escape; a non-nil error always means the
// provider was unreachable or answered outside its documented contract.
type OTPGateway interface {
	// RequestChallenge triggers delivery of a one-time code and returns the
	// provider session id. It sends a real SMS and must not be retried on
	// ambiguous failures.
	RequestChallenge(ctx context.Context, phoneNumber string) (sessionID string, err error)
	// VerifyChallenge reports whether the submitted code matches the
	// outstanding session. Any well-formed provider answer other than an
	// exact match is matched=false with a nil error.
	VerifyChallenge(ctx context.Context, sessionID, code string) (matched bool, err error)
}
