package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo implementación de DraftRepository sobre PostgreSQL.
// Las URLs de imagen se guardan como text[]: opacas, sin interpretación.
type DraftRepo struct {
	q Querier
}

// NewDraftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDraftRepository(q Querier) *DraftRepo {
	return &DraftRepo{q: q}
}

const draftColumns = `id, code, name, note, image_urls, status, created_at, updated_at`

// Create persiste un borrador nuevo.
func (r *DraftRepo) Create(draft *entity.Draft) error {
	query := `
		INSERT INTO drafts (` + draftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		draft.ID, draft.Code, draft.Name, draft.Note, draft.ImageURLs,
		draft.Status, draft.CreatedAt, draft.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert draft: %w", err)
	}
	return nil
}

// GetByID obtiene un borrador por ID.
func (r *DraftRepo) GetByID(id string) (*entity.Draft, error) {
	query := `SELECT ` + draftColumns + ` FROM drafts WHERE id = $1`
	var d entity.Draft
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Code, &d.Name, &d.Note, &d.ImageURLs, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return &d, nil
}

// Update reemplaza cabecera e imágenes completas.
func (r *DraftRepo) Update(draft *entity.Draft) error {
	query := `
		UPDATE drafts SET code = $2, name = $3, note = $4, image_urls = $5, status = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		draft.ID, draft.Code, draft.Name, draft.Note, draft.ImageURLs, draft.Status, draft.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update draft: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete elimina un borrador.
func (r *DraftRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM drafts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List lista borradores, más recientes primero.
func (r *DraftRepo) List(limit, offset int) ([]*entity.Draft, error) {
	query := `SELECT ` + draftColumns + ` FROM drafts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*entity.Draft
	for rows.Next() {
		var d entity.Draft
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.Note, &d.ImageURLs,
			&d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, &d)
	}
	return drafts, rows.Err()
}
