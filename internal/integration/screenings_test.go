package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ScreeningTestSuite struct {
	BaseSuite
}

func TestScreeningSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(ScreeningTestSuite))
}

func seedMovieAndCinema(t testing.TB, app *TestApp) {
	truncateAll(t, app.DB)
	insertMovie(t, app.DB, "Dune", "Sci-Fi", 155)
	insertCinema(t, app.DB, "Cine Paris")
}

func (s *ScreeningTestSuite) TestCreateScreening() {
	scenarios := []Scenario{
		{
			Name:           "creates screening",
			Method:         "POST",
			URL:            "/Sessao",
			Body:           jsonBody(`{"filmeId": 1, "cinemaId": 1}`),
			ExpectedStatus: 201,
			ExpectedResponse: `{
				"filmeId": 1, "cinemaId": 1, "cinema": {"id": 1, "nome": "Cine Paris"}
			}`,
			BeforeTestFunc: seedMovieAndCinema,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "/Sessao/1/1", res.Header.Get("Location"))
				assert.Equal(t, 1, countRows(t, app.DB, "SELECT COUNT(*) FROM screenings"))
			},
		},
		{
			Name:           "returns 409 for duplicate screening",
			Method:         "POST",
			URL:            "/Sessao",
			Body:           jsonBody(`{"filmeId": 1, "cinemaId": 1}`),
			ExpectedStatus: 409,
			ExpectedResponse: `{
				"message": "movie 1 is already screened at cinema 1"
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedMovieAndCinema(t, app)
				insertScreening(t, app.DB, 1, 1)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 1, countRows(t, app.DB, "SELECT COUNT(*) FROM screenings"))
			},
		},
		{
			Name:           "returns 422 for movie id beyond the key range",
			Method:         "POST",
			URL:            "/Sessao",
			Body:           jsonBody(`{"filmeId": 3000000000, "cinemaId": 1}`),
			ExpectedStatus: 422,
			ExpectedResponse: `{
				"message": "One or more fields have invalid values",
				"validationErrors": [
					{"field": "filmeId", "issue": "must be less than or equal to 2147483647"}
				]
			}`,
			BeforeTestFunc: seedMovieAndCinema,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 0, countRows(t, app.DB, "SELECT COUNT(*) FROM screenings"))
			},
		},
		{
			Name:           "returns 409 for unknown movie",
			Method:         "POST",
			URL:            "/Sessao",
			Body:           jsonBody(`{"filmeId": 9, "cinemaId": 1}`),
			ExpectedStatus: 409,
			ExpectedResponse: `{
				"message": "movie 9 or cinema 1 does not exist"
			}`,
			BeforeTestFunc: seedMovieAndCinema,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *ScreeningTestSuite) TestGetScreenings() {
	scenarios := []Scenario{
		{
			Name:           "lists screenings ordered by movie and cinema",
			Method:         "GET",
			URL:            "/Sessao",
			ExpectedStatus: 200,
			ExpectedResponse: `[
				{"filmeId": 1, "cinemaId": 1, "cinema": {"id": 1, "nome": "Cine Paris"}},
				{"filmeId": 1, "cinemaId": 2, "cinema": {"id": 2, "nome": "Cine Belas Artes"}},
				{"filmeId": 2, "cinemaId": 1, "cinema": {"id": 1, "nome": "Cine Paris"}}
			]`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedMovieAndCinema(t, app)
				insertMovie(t, app.DB, "Arrival", "Drama", 116)
				insertCinema(t, app.DB, "Cine Belas Artes")
				insertScreening(t, app.DB, 2, 1)
				insertScreening(t, app.DB, 1, 2)
				insertScreening(t, app.DB, 1, 1)
			},
		},
		{
			Name:           "returns single screening",
			Method:         "GET",
			URL:            "/Sessao/1/1",
			ExpectedStatus: 200,
			ExpectedResponse: `{
				"filmeId": 1, "cinemaId": 1, "cinema": {"id": 1, "nome": "Cine Paris"}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedMovieAndCinema(t, app)
				insertScreening(t, app.DB, 1, 1)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *ScreeningTestSuite) TestDeleteScreening() {
	scenarios := []Scenario{
		{
			Name:           "deletes screening",
			Method:         "DELETE",
			URL:            "/Sessao/1/1",
			ExpectedStatus: 204,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedMovieAndCinema(t, app)
				insertScreening(t, app.DB, 1, 1)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 0, countRows(t, app.DB, "SELECT COUNT(*) FROM screenings"))
				assert.Equal(t, 1, countRows(t, app.DB, "SELECT COUNT(*) FROM movies"))
			},
		},
		{
			Name:           "returns 404 once deleted",
			Method:         "GET",
			URL:            "/Sessao/1/1",
			ExpectedStatus: 404,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
