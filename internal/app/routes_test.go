package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
	"github.com/metinatakli/filmes-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "non numeric id",
			method:         http.MethodGet,
			url:            "/Filme/abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid value for parameter id",
		},
		{
			name:           "non numeric skip",
			method:         http.MethodGet,
			url:            "/Filme?skip=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid value for parameter skip",
		},
		{
			name:           "non numeric screening key",
			method:         http.MethodDelete,
			url:            "/Sessao/1/x",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid value for parameter cinemaId",
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			url:            "/Filmes",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "unsupported method",
			method:         http.MethodPatch,
			url:            "/Cinema/1",
			wantStatus:     http.StatusMethodNotAllowed,
			wantErrMessage: fmt.Sprintf(ErrMethodNotAllowed, http.MethodPatch),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication()

			w, r := executeRequest(t, tt.method, tt.url, nil)

			app.Routes().ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestRoutesBindQueryParameters(t *testing.T) {
	var gotFilters domain.MovieFilters

	app := newTestApplication(func(a *Application) {
		a.movieRepo = &mocks.MockMovieRepo{
			GetAllFunc: func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
				gotFilters = filters
				return []*domain.Movie{}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/Filme?skip=2&take=3&nomeCinema=Cine%20Paris", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	want := domain.MovieFilters{Skip: 2, Take: 3, CinemaName: "Cine Paris"}
	if diff := cmp.Diff(want, gotFilters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutesRecoverPanic(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.movieRepo = &mocks.MockMovieRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				panic("boom")
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/Filme/1", nil)

	app.Routes().ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, ErrInternalServer, resp.Message)
	assert.NotEmpty(t, resp.RequestId)
}

func TestGetHealth(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "test", resp.SystemInfo.Environment)
	assert.NotEmpty(t, resp.SystemInfo.Version)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestGetHealthDatabaseDown(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.db = stubPinger{err: errors.New("connection refused")}
	})

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "DOWN", resp.Status)
}

func TestSwaggerRoute(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/swagger", nil)
	r.Header.Set("Accept", "application/json")

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
