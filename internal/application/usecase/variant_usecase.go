package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// VariantUseCase casos de uso CRUD para SKUs del catálogo. El costo promedio
// se actualiza vía movimientos de compra, nunca por edición directa.
type VariantUseCase struct {
	repo repository.VariantRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(repo repository.VariantRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo}
}

// Create crea uno o varios SKUs. Con Variants vacío crea el SKU base;
// con Variants la base aporta los campos comunes y cada color genera un SKU
// independiente. Cualquier SKU duplicado aborta la operación completa.
func (uc *VariantUseCase) Create(in dto.CreateVariantRequest) ([]dto.VariantResponse, error) {
	if in.Type != entity.VariantTypeMaterial && in.Type != entity.VariantTypeProduct {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	var fields []dto.VariantFields
	if in.IsMultiVariant() {
		for _, v := range in.Variants {
			f := in.VariantFields
			f.SKU = v.SKU
			f.Attribute = v.Attribute
			if v.Name != "" {
				f.Name = v.Name
			}
			fields = append(fields, f)
		}
	} else {
		fields = append(fields, in.VariantFields)
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		sku := strings.TrimSpace(f.SKU)
		if sku == "" || seen[sku] {
			return nil, domain.ErrInvalidInput
		}
		seen[sku] = true
		existing, err := uc.repo.GetBySKU(sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCode
		}
	}

	now := time.Now()
	out := make([]dto.VariantResponse, 0, len(fields))
	for _, f := range fields {
		variant := &entity.Variant{
			ID:        uuid.New().String(),
			SKU:       strings.TrimSpace(f.SKU),
			Name:      f.Name,
			Type:      in.Type,
			Attribute: f.Attribute,
			Unit:      f.Unit,
			CostPrice: f.CostPrice,
			Note:      f.Note,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(variant); err != nil {
			return nil, err
		}
		out = append(out, *toVariantResponse(variant))
	}
	return out, nil
}

// GetByID obtiene un SKU por ID.
func (uc *VariantUseCase) GetByID(id string) (*dto.VariantResponse, error) {
	variant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	return toVariantResponse(variant), nil
}

// Update modifica los campos descriptivos de un SKU. SKU, tipo y costo
// promedio no se editan por esta vía.
func (uc *VariantUseCase) Update(id string, in dto.VariantFields) (*dto.VariantResponse, error) {
	variant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	variant.Name = in.Name
	variant.Attribute = in.Attribute
	variant.Unit = in.Unit
	variant.Note = in.Note
	variant.UpdatedAt = time.Now()
	if err := uc.repo.Update(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// List lista SKUs, opcionalmente filtrados por tipo (material|product).
func (uc *VariantUseCase) List(variantType string, page dto.PageRequest) (*dto.VariantListResponse, error) {
	page.DefaultPage()
	if variantType != "" && variantType != entity.VariantTypeMaterial && variantType != entity.VariantTypeProduct {
		return nil, domain.ErrInvalidInput
	}
	variants, err := uc.repo.List(variantType, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		items = append(items, *toVariantResponse(v))
	}
	return &dto.VariantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

func toVariantResponse(v *entity.Variant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:        v.ID,
		SKU:       v.SKU,
		Name:      v.Name,
		Type:      v.Type,
		Attribute: v.Attribute,
		Unit:      v.Unit,
		CostPrice: v.CostPrice,
		Note:      v.Note,
		CreatedAt: v.CreatedAt,
	}
}
