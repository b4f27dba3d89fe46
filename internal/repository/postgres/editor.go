package postgres

import (
	"context"
	"errors"
	"fmt"

	"site-editor-api/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertEditorQuery       = `INSERT INTO editors(id, name, email) VALUES ($1, $2, $3) RETURNING id, name, email`
	selectEditorsByEmail    = `SELECT id, name, email FROM editors WHERE email = $1`
	selectEditorsQuery      = `SELECT id, name, email FROM editors ORDER BY name ASC, id ASC`
	selectEditorQuery       = `SELECT id, name, email FROM editors WHERE id = $1`
	updateEditorQuery       = `UPDATE editors SET name = $2, email = $3, updated_at = NOW() WHERE id = $1 RETURNING id, name, email`
	deleteEditorQuery       = `DELETE FROM editors WHERE id = $1`
	uniqueViolationCode     = "23505"
	conflictingEmailMessage = "An editor already exists with the email %s"
)

// CreateEditor inserts a new roster record with a generated id.
func (p *Postgres) CreateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	var res entities.Editor
	err := p.db.QueryRow(ctx, insertEditorQuery, uuid.NewString(), editor.Name, editor.Email).
		Scan(&res.ID, &res.Name, &res.Email)
	if err != nil {
		p.log.Errorw("failed to insert editor", "error", err, "email", editor.Email)
		if isUniqueViolation(err) {
			return nil, entities.Errorf(entities.ErrConflict, conflictingEmailMessage, editor.Email)
		}
		return nil, fmt.Errorf("insert editor: %w", err)
	}

	p.log.Infow("editor created", "editor_id", res.ID)
	return &res, nil
}

// FindEditorsByEmail returns every record with the given email.
func (p *Postgres) FindEditorsByEmail(ctx context.Context, email string) ([]entities.Editor, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, selectEditorsByEmail, email)
	if err != nil {
		return nil, fmt.Errorf("find editors by email: %w", err)
	}
	return p.collect(rows)
}

// ListEditors returns all roster records ordered by name.
func (p *Postgres) ListEditors(ctx context.Context) ([]entities.Editor, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, selectEditorsQuery)
	if err != nil {
		return nil, fmt.Errorf("list editors: %w", err)
	}
	return p.collect(rows)
}

// GetEditor fetches a single record by id.
func (p *Postgres) GetEditor(ctx context.Context, id string) (*entities.Editor, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	var res entities.Editor
	if err := p.db.QueryRow(ctx, selectEditorQuery, id).Scan(&res.ID, &res.Name, &res.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEditorNotFound
		}
		return nil, fmt.Errorf("get editor: %w", err)
	}
	return &res, nil
}

// UpdateEditor overwrites name and email of an existing record.
func (p *Postgres) UpdateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	var res entities.Editor
	err := p.db.QueryRow(ctx, updateEditorQuery, editor.ID, editor.Name, editor.Email).
		Scan(&res.ID, &res.Name, &res.Email)
	if err != nil {
		p.log.Errorw("failed to update editor", "error", err, "editor_id", editor.ID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, entities.ErrEditorNotFound
		case isUniqueViolation(err):
			return nil, entities.Errorf(entities.ErrConflict, conflictingEmailMessage, editor.Email)
		}
		return nil, fmt.Errorf("update editor: %w", err)
	}

	p.log.Infow("editor updated", "editor_id", res.ID)
	return &res, nil
}

// DeleteEditor removes a record by id.
func (p *Postgres) DeleteEditor(ctx context.Context, id string) error {
	if err := p.ready(); err != nil {
		return err
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteEditorQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete editor", "error", err, "editor_id", id)
		return fmt.Errorf("delete editor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEditorNotFound
	}

	p.log.Infow("editor deleted", "editor_id", id)
	return nil
}

func (p *Postgres) collect(rows pgx.Rows) ([]entities.Editor, error) {
	defer rows.Close()

	editors := make([]entities.Editor, 0)
	for rows.Next() {
		var e entities.Editor
		if err := rows.Scan(&e.ID, &e.Name, &e.Email); err != nil {
			p.log.Errorw("failed to scan editor", "error", err)
			return nil, fmt.Errorf("scan editor: %w", err)
		}
		editors = append(editors, e)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating editors", "error", err)
		return nil, fmt.Errorf("iterate editors: %w", err)
	}
	return editors, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
