package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.MaterialGroupRepository = (*MaterialGroupRepo)(nil)

// MaterialGroupRepo implementación de MaterialGroupRepository sobre PostgreSQL.
type MaterialGroupRepo struct {
	q Querier
}

// NewMaterialGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialGroupRepository(q Querier) *MaterialGroupRepo {
	return &MaterialGroupRepo{q: q}
}

// Create inserta el grupo y sus items.
func (r *MaterialGroupRepo) Create(group *entity.MaterialGroup) error {
	ctx := context.Background()
	query := `INSERT INTO material_groups (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, group.ID, group.Name, group.CreatedAt); err != nil {
		return fmt.Errorf("insert material group: %w", err)
	}
	for _, item := range group.Items {
		itemQuery := `INSERT INTO material_group_items (group_id, variant_id, multiplier) VALUES ($1, $2, $3)`
		if _, err := r.q.Exec(ctx, itemQuery, group.ID, item.VariantID, item.Multiplier); err != nil {
			return fmt.Errorf("insert material group item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un grupo con sus items.
func (r *MaterialGroupRepo) GetByID(id string) (*entity.MaterialGroup, error) {
	ctx := context.Background()
	query := `SELECT id, name, created_at FROM material_groups WHERE id = $1`
	var g entity.MaterialGroup
	err := r.q.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material group: %w", err)
	}
	items, err := r.listItems(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Items = items
	return &g, nil
}

// List lista grupos con sus items.
func (r *MaterialGroupRepo) List(limit, offset int) ([]*entity.MaterialGroup, error) {
	ctx := context.Background()
	query := `SELECT id, name, created_at FROM material_groups ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list material groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.MaterialGroup
	for rows.Next() {
		var g entity.MaterialGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material group: %w", err)
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, g := range groups {
		items, err := r.listItems(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Items = items
	}
	return groups, nil
}

func (r *MaterialGroupRepo) listItems(ctx context.Context, groupID string) ([]entity.MaterialGroupItem, error) {
	query := `SELECT variant_id, multiplier FROM material_group_items WHERE group_id = $1`
	rows, err := r.q.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("list material group items: %w", err)
	}
	defer rows.Close()

	var items []entity.MaterialGroupItem
	for rows.Next() {
		var it entity.MaterialGroupItem
		if err := rows.Scan(&it.VariantID, &it.Multiplier); err != nil {
			return nil, fmt.Errorf("scan material group item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
