package purchasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var nameFolder = cases.Fold()

// NormalizeSupplierName forma canónica de un nombre de proveedor: trim,
// espacios internos colapsados y case folding Unicode. Determinista, para que
// crear por nombre nunca duplique proveedores.
func NormalizeSupplierName(name string) string {
	return nameFolder.String(NormalizeDisplayName(name))
}

// NormalizeDisplayName limpia el nombre para mostrar: trim y espacios internos
// colapsados, conservando mayúsculas y acentos.
func NormalizeDisplayName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// findOrCreateSupplier devuelve el proveedor con el nombre normalizado dado,
// creándolo exactamente una vez si no existe. Idempotente respecto al nombre.
func findOrCreateSupplier(repo repository.SupplierRepository, name string, now time.Time) (*entity.Supplier, error) {
	normalized := NormalizeSupplierName(name)
	if normalized == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := repo.GetByNormalizedName(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           NormalizeDisplayName(name),
		NormalizedName: normalized,
		CreatedAt:      now,
	}
	if err := repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}
