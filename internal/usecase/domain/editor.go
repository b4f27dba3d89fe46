package domain

import (
	"context"
	"errors"
	"sort"
	"strings"

	"site-editor-api/internal/entities"
)

// ListEditors returns the whole roster ordered by name.
func (u *Usecase) ListEditors(ctx context.Context) ([]entities.Editor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	editors, err := u.repo.ListEditors(ctx)
	if err != nil {
		u.log.Errorw("failed to list editors", "error", err)
		return nil, err
	}
	sort.SliceStable(editors, func(i, j int) bool { return editors[i].Name < editors[j].Name })
	return editors, nil
}

// CreateEditor adds a person to the roster. Emails are unique.
func (u *Usecase) CreateEditor(ctx context.Context, name, email string) (*entities.Editor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	switch {
	case name == "" && email == "":
		return nil, entities.Errorf(entities.ErrInvalidArgument, "A name and an email is required to create an editor.")
	case name == "":
		return nil, entities.Errorf(entities.ErrInvalidArgument, "A name is required to create an editor.")
	case email == "":
		return nil, entities.Errorf(entities.ErrInvalidArgument, "A email is required to create an editor.")
	}

	if err := u.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	return u.repo.CreateEditor(ctx, entities.Editor{Name: name, Email: email})
}

// UpdateEditor changes the supplied fields of an editor and keeps the rest.
func (u *Usecase) UpdateEditor(ctx context.Context, id string, patch entities.EditorPatch) (*entities.Editor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entities.Errorf(entities.ErrInvalidArgument, "An id is required to update an editor.")
	}

	current, err := u.repo.GetEditor(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	patch = trimPatch(patch)
	next := patch.Apply(*current)
	if next == *current {
		return current, nil
	}
	if next.Email != current.Email {
		if err := u.ensureEmailFree(ctx, next.Email, id); err != nil {
			return nil, err
		}
	}

	updated, err := u.repo.UpdateEditor(ctx, next)
	if err != nil {
		return nil, notFound(err, id)
	}
	return updated, nil
}

// DeleteEditor removes an editor from the roster.
func (u *Usecase) DeleteEditor(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Errorf(entities.ErrInvalidArgument, "An id is required to delete an editor.")
	}
	if err := u.repo.DeleteEditor(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func (u *Usecase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := u.repo.FindEditorsByEmail(ctx, email)
	if err != nil {
		u.log.Errorw("failed to look up editor email", "error", err, "email", email)
		return err
	}
	for _, e := range existing {
		if e.ID != selfID {
			return entities.Errorf(entities.ErrConflict, "An editor already exists with the email %s", email)
		}
	}
	return nil
}

// trimPatch treats empty values as omitted.
func trimPatch(p entities.EditorPatch) entities.EditorPatch {
	clean := func(v *string) *string {
		if v == nil {
			return nil
		}
		s := strings.TrimSpace(*v)
		if s == "" {
			return nil
		}
		return &s
	}
	return entities.EditorPatch{Name: clean(p.Name), Email: clean(p.Email)}
}

func notFound(err error, id string) error {
	if errors.Is(err, entities.ErrEditorNotFound) {
		return entities.Errorf(entities.ErrEditorNotFound, "No editor exists with the id %s", id)
	}
	return err
}
