package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"adev-backend/internal/schedule/service"
	"adev-backend/internal/schedule/store"
	"adev-backend/pkg/platform/middleware/admin"
)

const adminSecret = "segredo-teste"

func newScheduleRouter(t *testing.T) (http.Handler, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.New(st, logger, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(admin.RequireAdminSecret(adminSecret, logger))
		h.RegisterAdmin(ar)
	})
	return r, st
}

func doJSON(router http.Handler, method, path, body, secret string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(admin.HeaderName, secret)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProgramacaoEmpty(t *testing.T) {
	router, _ := newScheduleRouter(t)

	rec := doJSON(router, http.MethodGet, "/programacao", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on empty schedule, got %d", rec.Code)
	}
	// Empty collections must serialize as arrays, not null.
	body := rec.Body.String()
	var resp struct {
		Cultos  []json.RawMessage `json:"cultos"`
		Eventos []json.RawMessage `json:"eventos"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Cultos == nil || resp.Eventos == nil {
		t.Fatalf("expected empty arrays, got %s", body)
	}
}

func TestAdminRequiresSecret(t *testing.T) {
	router, st := newScheduleRouter(t)

	body := `{"nome":"Culto de Domingo","dia":"domingo","horario":"18:00"}`

	rec := doJSON(router, http.MethodPost, "/admin/cultos", body, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without secret, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPost, "/admin/cultos", body, "senha-errada")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong secret, got %d", rec.Code)
	}

	cultos, err := st.ListCultos(t.Context())
	if err != nil {
		t.Fatalf("list cultos: %v", err)
	}
	if len(cultos) != 0 {
		t.Fatalf("rejected requests must not insert, store has %d rows", len(cultos))
	}
}

func TestAdminCultoCreateAndDelete(t *testing.T) {
	router, _ := newScheduleRouter(t)

	rec := doJSON(router, http.MethodPost, "/admin/cultos", `{"nome":"Culto","dia":"domingo","horario":"18:00"}`, adminSecret)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 creating culto, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id in response")
	}

	rec = doJSON(router, http.MethodGet, "/programacao", "", "")
	var sched struct {
		Cultos []struct {
			Nome string `json:"nome"`
		} `json:"cultos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&sched); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if len(sched.Cultos) != 1 || sched.Cultos[0].Nome != "Culto" {
		t.Fatalf("created culto missing from schedule: %+v", sched.Cultos)
	}

	rec = doJSON(router, http.MethodDelete, "/admin/cultos/1", "", adminSecret)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting culto, got %d", rec.Code)
	}
	var deleted struct {
		Changes int64 `json:"changes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if deleted.Changes != 1 {
		t.Fatalf("expected changes 1, got %d", deleted.Changes)
	}
}

func TestAdminDeleteNonexistentID(t *testing.T) {
	router, _ := newScheduleRouter(t)

	rec := doJSON(router, http.MethodDelete, "/admin/cultos/42", "", adminSecret)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting unknown id, got %d", rec.Code)
	}
	var deleted struct {
		Changes int64 `json:"changes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if deleted.Changes != 0 {
		t.Fatalf("expected changes 0 for unknown id, got %d", deleted.Changes)
	}
}

func TestAdminCultoValidation(t *testing.T) {
	router, _ := newScheduleRouter(t)

	rec := doJSON(router, http.MethodPost, "/admin/cultos", `{"nome":"Culto"}`, adminSecret)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing fields, got %d", rec.Code)
	}
}

func TestAdminEventoRoutes(t *testing.T) {
	router, _ := newScheduleRouter(t)

	// descricao omitted: optional.
	rec := doJSON(router, http.MethodPost, "/admin/eventos", `{"nome":"Congresso","data":"2026-10-12"}`, adminSecret)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 creating evento, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodDelete, "/admin/eventos/1", "", adminSecret)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting evento, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodDelete, "/admin/eventos/abc", "", adminSecret)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on non-numeric id, got %d", rec.Code)
	}
}
