package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación de BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Create inserta la cabecera y sus líneas.
func (r *BOMRepo) Create(bom *entity.BOM) error {
	ctx := context.Background()
	query := `INSERT INTO boms (id, name, output_variant_id, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, bom.ID, bom.Name, bom.OutputVariantID, bom.CreatedAt); err != nil {
		return fmt.Errorf("insert bom: %w", err)
	}
	for _, line := range bom.Lines {
		lineQuery := `INSERT INTO bom_lines (bom_id, material_variant_id, quantity_needed) VALUES ($1, $2, $3)`
		if _, err := r.q.Exec(ctx, lineQuery, bom.ID, line.MaterialVariantID, line.QuantityNeeded); err != nil {
			return fmt.Errorf("insert bom line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una receta con sus líneas.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	ctx := context.Background()
	query := `SELECT id, name, output_variant_id, created_at FROM boms WHERE id = $1`
	var bom entity.BOM
	err := r.q.QueryRow(ctx, query, id).Scan(&bom.ID, &bom.Name, &bom.OutputVariantID, &bom.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	lines, err := r.listLines(ctx, bom.ID)
	if err != nil {
		return nil, err
	}
	bom.Lines = lines
	return &bom, nil
}

// List lista recetas con sus líneas.
func (r *BOMRepo) List(limit, offset int) ([]*entity.BOM, error) {
	ctx := context.Background()
	query := `SELECT id, name, output_variant_id, created_at FROM boms ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()

	var boms []*entity.BOM
	for rows.Next() {
		var bom entity.BOM
		if err := rows.Scan(&bom.ID, &bom.Name, &bom.OutputVariantID, &bom.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		boms = append(boms, &bom)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, bom := range boms {
		lines, err := r.listLines(ctx, bom.ID)
		if err != nil {
			return nil, err
		}
		bom.Lines = lines
	}
	return boms, nil
}

func (r *BOMRepo) listLines(ctx context.Context, bomID string) ([]entity.BOMLine, error) {
	query := `SELECT material_variant_id, quantity_needed FROM bom_lines WHERE bom_id = $1`
	rows, err := r.q.Query(ctx, query, bomID)
	if err != nil {
		return nil, fmt.Errorf("list bom lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.BOMLine
	for rows.Next() {
		var line entity.BOMLine
		if err := rows.Scan(&line.MaterialVariantID, &line.QuantityNeeded); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
