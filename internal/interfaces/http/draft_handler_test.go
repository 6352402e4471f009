package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/application/usecase"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	apphttp "github.com/jhoicas/textil-api/internal/interfaces/http"
)

type stubDraftRepo struct{ drafts map[string]*entity.Draft }

func (r *stubDraftRepo) Create(d *entity.Draft) error             { r.drafts[d.ID] = d; return nil }
func (r *stubDraftRepo) GetByID(id string) (*entity.Draft, error) { return r.drafts[id], nil }
func (r *stubDraftRepo) Update(d *entity.Draft) error             { r.drafts[d.ID] = d; return nil }
func (r *stubDraftRepo) Delete(id string) error                   { delete(r.drafts, id); return nil }
func (r *stubDraftRepo) List(limit, offset int) ([]*entity.Draft, error) {
	var out []*entity.Draft
	for _, d := range r.drafts {
		out = append(out, d)
	}
	return out, nil
}

func buildDraftApp() (*fiber.App, *stubDraftRepo) {
	repo := &stubDraftRepo{drafts: make(map[string]*entity.Draft)}
	handler := apphttp.NewDraftHandler(usecase.NewDraftUseCase(repo))
	app := fiber.New()
	drafts := app.Group("/api/drafts")
	drafts.Post("/", handler.Create)
	drafts.Patch("/:id/status", handler.SetStatus)
	return app, repo
}

func createDraft(t *testing.T, app *fiber.App) dto.DraftResponse {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/drafts/",
		strings.NewReader(`{"code":"D-001","name":"Vestido verano"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.DraftResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func patchStatus(t *testing.T, app *fiber.App, id, payload string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPatch, "/api/drafts/"+id+"/status",
		strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// PATCH /:id/status cambia solo el estado; el resto del borrador no se toca.
func TestDraftSetStatus_Aprobar(t *testing.T) {
	app, repo := buildDraftApp()
	draft := createDraft(t, app)

	resp := patchStatus(t, app, draft.ID, `{"status":"approved"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.DraftResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, entity.DraftStatusApproved, out.Status)
	assert.Equal(t, entity.DraftDeadlineComplete, out.DeadlineState)
	assert.Equal(t, "Vestido verano", repo.drafts[draft.ID].Name, "los demás campos no cambian")
}

func TestDraftSetStatus_EstadoInvalido(t *testing.T) {
	app, _ := buildDraftApp()
	draft := createDraft(t, app)

	resp := patchStatus(t, app, draft.ID, `{"status":"archivado"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDraftSetStatus_NoEncontrado(t *testing.T) {
	app, _ := buildDraftApp()
	resp := patchStatus(t, app, "no-existe", `{"status":"approved"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
