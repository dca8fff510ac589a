package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	clean(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func clean(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			clean(v[k])
		}
	case []any:
		for _, item := range v {
			clean(item)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE screenings, addresses, cinemas, movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func insertMovie(t testing.TB, db *pgxpool.Pool, title, genre string, duration int) int {
	var id int

	err := db.QueryRow(
		context.Background(),
		`INSERT INTO movies (title, genre, duration) VALUES ($1, $2, $3) RETURNING id`,
		title,
		genre,
		duration,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertCinema(t testing.TB, db *pgxpool.Pool, name string) int {
	var id int

	err := db.QueryRow(
		context.Background(),
		`INSERT INTO cinemas (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertAddress(t testing.TB, db *pgxpool.Pool, street string, number int, city string, cinemaID int) int {
	var id int

	err := db.QueryRow(
		context.Background(),
		`INSERT INTO addresses (street, number, city, cinema_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		street,
		number,
		city,
		cinemaID,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertScreening(t testing.TB, db *pgxpool.Pool, movieID, cinemaID int) {
	_, err := db.Exec(
		context.Background(),
		`INSERT INTO screenings (movie_id, cinema_id) VALUES ($1, $2)`,
		movieID,
		cinemaID,
	)
	require.NoError(t, err)
}

func countRows(t testing.TB, db *pgxpool.Pool, query string, args ...any) int {
	var count int

	err := db.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)

	return count
}
