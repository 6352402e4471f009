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

// MaterialGroupUseCase casos de uso para grupos de materiales (kits).
// Un grupo es composición de solo lectura: no maneja stock propio.
type MaterialGroupUseCase struct {
	repo        repository.MaterialGroupRepository
	variantRepo repository.VariantRepository
}

// NewMaterialGroupUseCase construye el caso de uso.
func NewMaterialGroupUseCase(repo repository.MaterialGroupRepository, variantRepo repository.VariantRepository) *MaterialGroupUseCase {
	return &MaterialGroupUseCase{repo: repo, variantRepo: variantRepo}
}

// Create crea un grupo validando que cada SKU exista y cada multiplicador sea positivo.
func (uc *MaterialGroupUseCase) Create(in dto.CreateMaterialGroupRequest) (*dto.MaterialGroupResponse, error) {
	if strings.TrimSpace(in.Name) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.MaterialGroupItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Multiplier.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		variant, err := uc.variantRepo.GetByID(it.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.MaterialGroupItem{
			VariantID:  it.VariantID,
			Multiplier: it.Multiplier,
		})
	}
	group := &entity.MaterialGroup{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(group); err != nil {
		return nil, err
	}
	return toMaterialGroupResponse(group), nil
}

// GetByID obtiene un grupo por ID.
func (uc *MaterialGroupUseCase) GetByID(id string) (*dto.MaterialGroupResponse, error) {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialGroupResponse(group), nil
}

// List lista grupos con paginación.
func (uc *MaterialGroupUseCase) List(page dto.PageRequest) ([]dto.MaterialGroupResponse, error) {
	page.DefaultPage()
	groups, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, *toMaterialGroupResponse(g))
	}
	return out, nil
}

func toMaterialGroupResponse(g *entity.MaterialGroup) *dto.MaterialGroupResponse {
	items := make([]dto.MaterialGroupItemRequest, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, dto.MaterialGroupItemRequest{
			VariantID:  it.VariantID,
			Multiplier: it.Multiplier,
		})
	}
	return &dto.MaterialGroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Items:     items,
		CreatedAt: g.CreatedAt,
	}
}
