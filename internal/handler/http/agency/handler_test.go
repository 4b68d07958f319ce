package agency_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/handler/http/agency"
	"agency-articles/internal/handler/http/respond"
	agencyUC "agency-articles/internal/usecase/agency"
)

type stubRepo struct {
	agencies []*entity.SystemAgency
	err      error
	calls    int
}

func (s *stubRepo) List(_ context.Context) ([]*entity.SystemAgency, error) {
	s.calls++
	return s.agencies, s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.SystemAgency, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.agencies {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func seeded() *stubRepo {
	return &stubRepo{agencies: []*entity.SystemAgency{
		{ID: 1, Name: "Ministry of Health"},
		{ID: 2, Name: "Ministry of Education"},
	}}
}

func newMux(repo *stubRepo, rs respond.Responder) *http.ServeMux {
	mux := http.NewServeMux()
	agency.Register(mux, agencyUC.Service{Repo: repo}, rs)
	return mux
}

func serve(mux http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env respond.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Error
}

func TestListHandler(t *testing.T) {
	rr := serve(newMux(seeded(), respond.Responder{}), "/list_system_agencies")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []agency.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)

	ids := map[int64]bool{}
	for _, a := range got {
		assert.False(t, ids[a.IDSystemAgency], "duplicate id %d", a.IDSystemAgency)
		ids[a.IDSystemAgency] = true
	}
	assert.Equal(t, "Ministry of Health", got[0].Name)
}

func TestListHandler_Empty(t *testing.T) {
	rr := serve(newMux(&stubRepo{}, respond.Responder{}), "/list_system_agencies")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListHandler_BackendUnavailable(t *testing.T) {
	repo := &stubRepo{err: entity.ErrBackendUnavailable}
	rr := serve(newMux(repo, respond.Responder{}), "/list_system_agencies")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "backend unavailable", errorMessage(t, rr))
}

func TestGetHandler_Found(t *testing.T) {
	rr := serve(newMux(seeded(), respond.Responder{}), "/get_system_agency_by_id?id_system_agency=2")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id_system_agency":2,"name":"Ministry of Education"}`, rr.Body.String())
}

func TestGetHandler_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		rs       respond.Responder
		wantCode int
	}{
		{"typed", respond.Responder{}, http.StatusNotFound},
		{"legacy", respond.Responder{Legacy: true}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newMux(seeded(), tt.rs), "/get_system_agency_by_id?id_system_agency=99")

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "system agency not found", errorMessage(t, rr))
		})
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	inputs := []string{
		"",
		"id_system_agency=",
		"id_system_agency=one",
		"id_system_agency=0",
		"id_system_agency=" + url.QueryEscape("1 OR 1=1"),
		"id_system_agency=" + url.QueryEscape("1' UNION SELECT * FROM article --"),
	}
	for _, q := range inputs {
		t.Run(q, func(t *testing.T) {
			repo := seeded()
			rr := serve(newMux(repo, respond.Responder{}), "/get_system_agency_by_id?"+q)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, errorMessage(t, rr), "id_system_agency")
			assert.Zero(t, repo.calls, "repository must not be called")
		})
	}
}
