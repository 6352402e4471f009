package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, sku, name, type, attribute, unit, cost_price, note, created_at, updated_at`

func scanVariant(row pgx.Row) (*entity.Variant, error) {
	var v entity.Variant
	err := row.Scan(&v.ID, &v.SKU, &v.Name, &v.Type, &v.Attribute, &v.Unit,
		&v.CostPrice, &v.Note, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un nuevo SKU.
func (r *VariantRepo) Create(variant *entity.Variant) error {
	query := `
		INSERT INTO variants (id, sku, name, type, attribute, unit, cost_price, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.SKU, variant.Name, variant.Type, variant.Attribute,
		variant.Unit, variant.CostPrice, variant.Note, variant.CreatedAt, variant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`
	v, err := scanVariant(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// GetBySKU obtiene un SKU por su código único.
func (r *VariantRepo) GetBySKU(sku string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE sku = $1`
	v, err := scanVariant(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant by sku: %w", err)
	}
	return v, nil
}

// Update actualiza los campos descriptivos. SKU, tipo y costo no se tocan aquí.
func (r *VariantRepo) Update(variant *entity.Variant) error {
	query := `
		UPDATE variants SET name = $2, attribute = $3, unit = $4, note = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.Name, variant.Attribute, variant.Unit, variant.Note, variant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update variant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateCost actualiza el costo promedio de referencia del SKU.
func (r *VariantRepo) UpdateCost(variantID string, cost decimal.Decimal) error {
	query := `UPDATE variants SET cost_price = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, variantID, cost)
	if err != nil {
		return fmt.Errorf("update variant cost: %w", err)
	}
	return nil
}

// List lista SKUs, opcionalmente por tipo.
func (r *VariantRepo) List(variantType string, limit, offset int) ([]*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants`
	args := []any{}
	if variantType != "" {
		query += ` WHERE type = $1 ORDER BY sku LIMIT $2 OFFSET $3`
		args = append(args, variantType, limit, offset)
	} else {
		query += ` ORDER BY sku LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var variants []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(&v.ID, &v.SKU, &v.Name, &v.Type, &v.Attribute, &v.Unit,
			&v.CostPrice, &v.Note, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, &v)
	}
	return variants, rows.Err()
}
