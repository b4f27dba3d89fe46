// Package entities contains core business entities.
package entities

// AuthStatus enumerates outcomes of the access gate.
type AuthStatus int

const (
	// AuthAuthorized lets the request through.
	AuthAuthorized AuthStatus = iota + 1
	// AuthDenied rejects the caller with 401.
	AuthDenied
	// AuthErrored reports an infrastructure failure with 500.
	AuthErrored
)

// AuthDecision is the per-request result of checking a bearer credential.
type AuthDecision struct {
	Status  AuthStatus
	Email   string
	Message string
}

// Authorized grants access to email.
func Authorized(email string) AuthDecision {
	return AuthDecision{Status: AuthAuthorized, Email: email}
}

// Denied refuses access for reason.
func Denied(reason string) AuthDecision {
	return AuthDecision{Status: AuthDenied, Message: reason}
}

// Errored reports that the decision could not be made.
func Errored(err error) AuthDecision {
	return AuthDecision{Status: AuthErrored, Message: err.Error()}
}
