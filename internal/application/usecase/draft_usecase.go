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

// DraftUseCase casos de uso para borradores de diseño. Sin efectos sobre el
// libro de inventario: aprobar un borrador no crea SKUs ni movimientos.
type DraftUseCase struct {
	repo repository.DraftRepository
	now  func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(repo repository.DraftRepository) *DraftUseCase {
	return &DraftUseCase{repo: repo, now: time.Now}
}

// Create crea un borrador en estado pending. El plazo de revisión de 48h
// corre desde la creación.
func (uc *DraftUseCase) Create(in dto.CreateDraftRequest) (*dto.DraftResponse, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	draft := &entity.Draft{
		ID:        uuid.New().String(),
		Code:      strings.TrimSpace(in.Code),
		Name:      strings.TrimSpace(in.Name),
		Note:      in.Note,
		ImageURLs: in.ImageURLs,
		Status:    entity.DraftStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(draft); err != nil {
		return nil, err
	}
	return uc.toDraftResponse(draft), nil
}

// GetByID obtiene un borrador con su clasificación de plazo.
func (uc *DraftUseCase) GetByID(id string) (*dto.DraftResponse, error) {
	draft, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toDraftResponse(draft), nil
}

// Update reemplaza cabecera, estado e imágenes. Las transiciones de estado
// son libres entre pending, approved y rejected.
func (uc *DraftUseCase) Update(id string, in dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	draft, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Status {
	case entity.DraftStatusPending, entity.DraftStatusApproved, entity.DraftStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}
	draft.Code = strings.TrimSpace(in.Code)
	draft.Name = strings.TrimSpace(in.Name)
	draft.Note = in.Note
	draft.Status = in.Status
	draft.ImageURLs = in.ImageURLs
	draft.UpdatedAt = uc.now()
	if err := uc.repo.Update(draft); err != nil {
		return nil, err
	}
	return uc.toDraftResponse(draft), nil
}

// SetStatus cambia solo el estado de un borrador.
func (uc *DraftUseCase) SetStatus(id, status string) (*dto.DraftResponse, error) {
	draft, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	switch status {
	case entity.DraftStatusPending, entity.DraftStatusApproved, entity.DraftStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}
	draft.Status = status
	draft.UpdatedAt = uc.now()
	if err := uc.repo.Update(draft); err != nil {
		return nil, err
	}
	return uc.toDraftResponse(draft), nil
}

// Delete elimina un borrador en cualquier estado.
func (uc *DraftUseCase) Delete(id string) error {
	draft, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if draft == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista borradores con su clasificación de plazo al momento de la lectura.
func (uc *DraftUseCase) List(page dto.PageRequest) ([]dto.DraftResponse, error) {
	page.DefaultPage()
	drafts, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, *uc.toDraftResponse(d))
	}
	return out, nil
}

func (uc *DraftUseCase) toDraftResponse(d *entity.Draft) *dto.DraftResponse {
	images := d.ImageURLs
	if images == nil {
		images = []string{}
	}
	return &dto.DraftResponse{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Note:          d.Note,
		Status:        d.Status,
		ImageURLs:     images,
		CreatedAt:     d.CreatedAt,
		Deadline:      d.Deadline(),
		DeadlineState: d.ClassifyDeadline(uc.now()),
	}
}
