// Package google verifies Google-issued OAuth ID tokens.
package google

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"site-editor-api/config"
	"site-editor-api/internal/entities"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// tokenValidator is the part of idtoken.Validator the verifier needs.
type tokenValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// Verifier checks ID tokens and returns the email they were issued to.
type Verifier struct {
	log       *zap.SugaredLogger
	validator tokenValidator
}

// New builds a Verifier whose certificate fetches are bounded by cfg.Timeout.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.GoogleConfig) (*Verifier, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("idtoken validator: %w", err)
	}
	return newVerifier(log, v), nil
}

func newVerifier(log *zap.SugaredLogger, v tokenValidator) *Verifier {
	return &Verifier{log: log.Named("identity.google"), validator: v}
}

// Check validates token for clientID. Rejected tokens yield an error matching
// entities.ErrInvalidToken; failures to reach Google are returned as is.
func (v *Verifier) Check(ctx context.Context, token, clientID string) (string, error) {
	payload, err := v.validator.Validate(ctx, token, clientID)
	if err != nil {
		if isTransportError(err) {
			v.log.Errorw("token verification unavailable", "error", err)
			return "", err
		}
		v.log.Infow("token rejected", "reason", err.Error())
		return "", entities.Wrap(entities.ErrInvalidToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", entities.Errorf(entities.ErrInvalidToken, "token carries no email claim")
	}
	return email, nil
}

// isTransportError separates infrastructure failures from rejected tokens.
// idtoken reports cert download problems as url/net errors or non-200 fetches.
func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "unable to retrieve cert")
}
