package domain

import (
	"context"
	"strings"

	"site-editor-api/internal/entities"
)

// ReadPage returns the page as it is on the site or in its pending edit.
func (u *Usecase) ReadPage(ctx context.Context, page entities.PageSpec) (*entities.Page, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.pages.GetPage(ctx, page.FilePath, page.PRBody)
}

// PublishPageEdit formats rawText as the page document and proposes it as an edit.
// ref is the github_ref the client last saw; when nil the pending edit, if any, is reused.
func (u *Usecase) PublishPageEdit(ctx context.Context, page entities.PageSpec, rawText string, ref *string) (*entities.Page, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(rawText) == "" {
		return nil, entities.Errorf(entities.ErrInvalidArgument, "The %s page cannot be edited to have no text.", page.Name)
	}

	formatted, err := u.formatter.Format(rawText, page.Title, page.Permalink)
	if err != nil {
		return nil, entities.Wrap(entities.ErrInvalidArgument, err)
	}

	existingRef := ref
	if existingRef != nil && strings.TrimSpace(*existingRef) == "" {
		existingRef = nil
	}
	if existingRef == nil {
		pending, err := u.pages.PendingEdit(ctx, page.PRBody)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			existingRef = &pending.Ref
		}
	}

	saved, err := u.pages.SavePage(ctx, page.FilePath, page.Title, formatted, existingRef, page.PRBody)
	if err != nil {
		u.log.Errorw("failed to publish page edit", "error", err, "page", page.Name)
		return nil, err
	}
	u.log.Infow("page edit published", "page", page.Name, "ref", saved.GitHubRef)
	return saved, nil
}
