package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPeople(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		w.Write([]byte(`{"results":[
			{"name":"Luke Skywalker","gender":"male","url":"https://swapi.dev/api/people/1/"},
			{"name":"C-3PO","gender":"n/a","url":"https://swapi.dev/api/people/2/"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	got, err := c.FetchPeople(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Luke Skywalker", got[0].Name)
	assert.Equal(t, "male", got[0].Gender)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFetchPeopleNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.FetchPeople(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}

func TestFetchPerson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/1/", r.URL.Path)
		w.Write([]byte(`{
			"name":"Luke Skywalker","height":"172","mass":"77",
			"hair_color":"blond","skin_color":"fair","eye_color":"blue",
			"birth_year":"19BBY","gender":"male",
			"homeworld":"https://swapi.dev/api/planets/1/",
			"films":["https://swapi.dev/api/films/1/"],
			"vehicles":[],"starships":[]
		}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	got, err := c.FetchPerson(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Name)
	assert.Equal(t, "19BBY", got.BirthYear)
	assert.Len(t, got.Films, 1)
	assert.Empty(t, got.Vehicles)
}

func TestFetchPersonNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.FetchPerson(context.Background(), "999")

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	_, err := c.FetchPeople(ctx)
	require.Error(t, err)
}

func TestIDFromURL(t *testing.T) {
	assert.Equal(t, "1", idFromURL("https://swapi.dev/api/people/1/"))
	assert.Equal(t, "42", idFromURL("https://swapi.dev/api/people/42"))
	assert.Equal(t, "", idFromURL(""))
}
