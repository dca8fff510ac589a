package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
	"github.com/metinatakli/filmes-api/internal/mocks"
	"github.com/metinatakli/filmes-api/internal/validator"
)

func TestCreateCinema(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Cinema) error
		wantStatus     int
		wantErrMessage string
		wantLocation   string
		wantResponse   *api.CinemaResponse
	}{
		{
			name: "successful creation",
			body: api.CinemaRequest{Nome: "Cine Paris"},
			createFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				cinema.ID = 3
				return nil
			},
			wantStatus:   http.StatusCreated,
			wantLocation: "/Cinema/3",
			wantResponse: &api.CinemaResponse{
				Id:      3,
				Nome:    "Cine Paris",
				Sessoes: []api.CinemaScreening{},
			},
		},
		{
			name:           "missing name",
			body:           api.CinemaRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "storage constraint violated",
			body: api.CinemaRequest{Nome: "Cine Paris"},
			createFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				return domain.ErrConstraintViolation
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrConstraintViolation.Error(),
		},
		{
			name: "database error",
			body: api.CinemaRequest{Nome: "Cine Paris"},
			createFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.cinemaRepo = &mocks.MockCinemaRepo{
					CreateFunc: tt.createFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/Cinema", tt.body)

			app.CreateCinema(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateCinema() status = %v, want %v", got, tt.wantStatus)
			}

			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("CreateCinema() Location = %q, want %q", got, tt.wantLocation)
			}

			if tt.wantResponse != nil {
				var response api.CinemaResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("CreateCinema() response mismatch (-want +got):\n%s", diff)
				}
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

func TestGetCinemaById(t *testing.T) {
	tests := []struct {
		name           string
		id             int
		getByIdFunc    func(context.Context, int) (*domain.Cinema, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.CinemaResponse
	}{
		{
			name: "cinema with address and screenings",
			id:   2,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Cinema, error) {
				return &domain.Cinema{
					ID:   2,
					Name: "Cine Paris",
					Address: &domain.Address{
						ID:       5,
						Street:   "Rua Augusta",
						Number:   1475,
						City:     "São Paulo",
						CinemaID: 2,
					},
					Screenings: []domain.Screening{{MovieID: 1, CinemaID: 2}},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.CinemaResponse{
				Id:   2,
				Nome: "Cine Paris",
				Endereco: &api.AddressResponse{
					Id:         5,
					Logradouro: "Rua Augusta",
					Numero:     1475,
					Cidade:     "São Paulo",
					CinemaId:   2,
				},
				Sessoes: []api.CinemaScreening{{FilmeId: 1, CinemaId: 2}},
			},
		},
		{
			name: "cinema without address",
			id:   4,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Cinema, error) {
				return &domain.Cinema{ID: 4, Name: "Cine Belas Artes"}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.CinemaResponse{
				Id:      4,
				Nome:    "Cine Belas Artes",
				Sessoes: []api.CinemaScreening{},
			},
		},
		{
			name: "cinema not found",
			id:   99,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Cinema, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.cinemaRepo = &mocks.MockCinemaRepo{
					GetByIdFunc: tt.getByIdFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, fmt.Sprintf("/Cinema/%d", tt.id), nil)

			app.GetCinemaById(w, r, tt.id)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetCinemaById() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.CinemaResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetCinemaById() response mismatch (-want +got):\n%s", diff)
				}
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

func TestGetCinemas(t *testing.T) {
	var gotPagination domain.Pagination

	app := newTestApplication(func(a *Application) {
		a.cinemaRepo = &mocks.MockCinemaRepo{
			GetAllFunc: func(ctx context.Context, pagination domain.Pagination) ([]*domain.Cinema, error) {
				gotPagination = pagination
				return []*domain.Cinema{{ID: 1, Name: "Cine Paris"}}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/Cinema?skip=5", nil)

	app.GetCinemas(w, r, api.GetCinemasParams{Skip: ptr(5)})

	if w.Code != http.StatusOK {
		t.Fatalf("GetCinemas() status = %v, want %v", w.Code, http.StatusOK)
	}

	if diff := cmp.Diff(domain.Pagination{Skip: 5, Take: DefaultTake}, gotPagination); diff != "" {
		t.Errorf("GetCinemas() pagination mismatch (-want +got):\n%s", diff)
	}

	var response []api.CinemaResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := []api.CinemaResponse{{Id: 1, Nome: "Cine Paris", Sessoes: []api.CinemaScreening{}}}
	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("GetCinemas() response mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateCinema(t *testing.T) {
	tests := []struct {
		name           string
		id             int
		body           any
		updateFunc     func(context.Context, *domain.Cinema) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful update",
			id:   2,
			body: api.CinemaRequest{Nome: "Cine Paris 2"},
			updateFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				if cinema.ID != 2 || cinema.Name != "Cine Paris 2" {
					return fmt.Errorf("unexpected cinema %+v", cinema)
				}
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "cinema not found",
			id:   99,
			body: api.CinemaRequest{Nome: "Cine Paris"},
			updateFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "missing name",
			id:             2,
			body:           api.CinemaRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.cinemaRepo = &mocks.MockCinemaRepo{
					UpdateFunc: tt.updateFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPut, fmt.Sprintf("/Cinema/%d", tt.id), tt.body)

			app.UpdateCinema(w, r, tt.id)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("UpdateCinema() status = %v, want %v", got, tt.wantStatus)
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

func TestDeleteCinema(t *testing.T) {
	tests := []struct {
		name           string
		id             int
		deleteFunc     func(context.Context, int) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful deletion",
			id:   2,
			deleteFunc: func(ctx context.Context, id int) error {
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "cinema still has an address",
			id:   2,
			deleteFunc: func(ctx context.Context, id int) error {
				return domain.ErrDependentRecords
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "cinema cannot be deleted while it has an address",
		},
		{
			name: "cinema not found",
			id:   99,
			deleteFunc: func(ctx context.Context, id int) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "non positive id",
			id:             0,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "cinema ID must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.cinemaRepo = &mocks.MockCinemaRepo{
					DeleteFunc: tt.deleteFunc,
				}
			})

			w, r := executeRequest(t, http.MethodDelete, fmt.Sprintf("/Cinema/%d", tt.id), nil)

			app.DeleteCinema(w, r, tt.id)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("DeleteCinema() status = %v, want %v", got, tt.wantStatus)
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
