package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
)

// memDraftRepo repositorio en memoria para borradores.
type memDraftRepo struct{ drafts map[string]*entity.Draft }

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string]*entity.Draft)}
}

func (r *memDraftRepo) Create(d *entity.Draft) error { r.drafts[d.ID] = d; return nil }
func (r *memDraftRepo) GetByID(id string) (*entity.Draft, error) {
	if d, ok := r.drafts[id]; ok {
		c := *d
		return &c, nil
	}
	return nil, nil
}
func (r *memDraftRepo) Update(d *entity.Draft) error { r.drafts[d.ID] = d; return nil }
func (r *memDraftRepo) Delete(id string) error       { delete(r.drafts, id); return nil }
func (r *memDraftRepo) List(limit, offset int) ([]*entity.Draft, error) {
	var out []*entity.Draft
	for _, d := range r.drafts {
		out = append(out, d)
	}
	return out, nil
}

// newDraftUC fija el reloj del caso de uso para clasificar plazos de forma
// determinista.
func newDraftUC(repo *memDraftRepo, clock time.Time) *DraftUseCase {
	uc := NewDraftUseCase(repo)
	uc.now = func() time.Time { return clock }
	return uc
}

func TestDraftCreate_PendingConPlazoDe48h(t *testing.T) {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	uc := newDraftUC(newMemDraftRepo(), created)

	resp, err := uc.Create(dto.CreateDraftRequest{Code: "D-001", Name: "Vestido verano"})
	require.NoError(t, err)

	assert.Equal(t, entity.DraftStatusPending, resp.Status)
	assert.Equal(t, created.Add(48*time.Hour), resp.Deadline)
	assert.Equal(t, entity.DraftDeadlineOK, resp.DeadlineState)
	assert.NotNil(t, resp.ImageURLs, "imágenes nulas se devuelven como lista vacía")
	assert.Empty(t, resp.ImageURLs)
}

func TestDraftCreate_Validaciones(t *testing.T) {
	uc := newDraftUC(newMemDraftRepo(), time.Now())

	_, err := uc.Create(dto.CreateDraftRequest{Code: "  ", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(dto.CreateDraftRequest{Code: "D-1", Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La clasificación del plazo se deriva en cada lectura respecto al reloj.
func TestDraftClassify_SegunTiempoRestante(t *testing.T) {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := newMemDraftRepo()
	uc := newDraftUC(repo, created)
	resp, err := uc.Create(dto.CreateDraftRequest{Code: "D-001", Name: "Vestido"})
	require.NoError(t, err)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"recién creado", 0, entity.DraftDeadlineOK},
		{"justo antes de las 24h restantes", 24*time.Hour - time.Minute, entity.DraftDeadlineOK},
		{"quedan menos de 24h", 24*time.Hour + time.Minute, entity.DraftDeadlineUrgent},
		{"plazo vencido", 49 * time.Hour, entity.DraftDeadlineOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc.now = func() time.Time { return created.Add(tc.elapsed) }
			got, err := uc.GetByID(resp.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.DeadlineState)
		})
	}
}

// Un borrador resuelto reporta "complete" aunque el plazo haya vencido.
func TestDraftClassify_ResueltoEsComplete(t *testing.T) {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	uc := newDraftUC(newMemDraftRepo(), created)
	resp, err := uc.Create(dto.CreateDraftRequest{Code: "D-001", Name: "Vestido"})
	require.NoError(t, err)

	_, err = uc.SetStatus(resp.ID, entity.DraftStatusApproved)
	require.NoError(t, err)

	uc.now = func() time.Time { return created.Add(100 * time.Hour) }
	got, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DraftDeadlineComplete, got.DeadlineState)
}

func TestDraftUpdate_EstadoInvalidoRechazado(t *testing.T) {
	uc := newDraftUC(newMemDraftRepo(), time.Now())
	resp, err := uc.Create(dto.CreateDraftRequest{Code: "D-001", Name: "Vestido"})
	require.NoError(t, err)

	_, err = uc.Update(resp.ID, dto.UpdateDraftRequest{
		Code: "D-001", Name: "Vestido", Status: "archivado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetStatus(resp.ID, "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reemplaza las imágenes completas, no las mezcla.
func TestDraftUpdate_ReemplazaImagenes(t *testing.T) {
	uc := newDraftUC(newMemDraftRepo(), time.Now())
	resp, err := uc.Create(dto.CreateDraftRequest{
		Code: "D-001", Name: "Vestido",
		ImageURLs: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
	})
	require.NoError(t, err)

	got, err := uc.Update(resp.ID, dto.UpdateDraftRequest{
		Code: "D-001", Name: "Vestido", Status: entity.DraftStatusRejected,
		ImageURLs: []string{"https://cdn/c.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/c.jpg"}, got.ImageURLs)
	assert.Equal(t, entity.DraftStatusRejected, got.Status)
}

func TestDraftDelete_Inexistente(t *testing.T) {
	uc := newDraftUC(newMemDraftRepo(), time.Now())
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
