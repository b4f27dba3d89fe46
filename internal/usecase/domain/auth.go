package domain

import (
	"context"
	"errors"
	"strings"

	"site-editor-api/internal/entities"
)

const (
	missingTokenMessage = "A Google oauth token is required"
	invalidTokenMessage = "Invalid Google oauth token"
	noAccessMessage     = "The associated Google Account does not have access to the editor"
)

// Authorize checks the bearer token of a request against Google and the editor roster.
func (u *Usecase) Authorize(ctx context.Context, authorization string) entities.AuthDecision {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	token := bearerToken(authorization)
	if token == "" {
		return entities.Denied(missingTokenMessage)
	}

	email, err := u.verifier.Check(ctx, token, u.clientID)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidToken) {
			u.log.Infow("access denied: invalid token", "reason", err.Error())
			return entities.Denied(invalidTokenMessage)
		}
		u.log.Errorw("failed to verify token", "error", err)
		return entities.Errored(err)
	}

	editors, err := u.repo.FindEditorsByEmail(ctx, email)
	if err != nil {
		u.log.Errorw("failed to look up editor", "error", err, "email", email)
		return entities.Errored(err)
	}
	if len(editors) == 0 {
		u.log.Infow("access denied: not an editor", "email", email)
		return entities.Denied(noAccessMessage)
	}
	return entities.Authorized(email)
}

// bearerToken extracts the credential of an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
