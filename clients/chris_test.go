package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chris-cli/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "secret")
	assert.NoError(t, c.Authenticate(context.Background()))
}

func TestAuthenticateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "bad")
	assert.Error(t, c.Authenticate(context.Background()))
}

func TestListResources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/search/", r.URL.Path)
		assert.Equal(t, "/data", r.URL.Query().Get("path"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"count": 2,
			"results": [
				{"id": 10, "fname": "/data/a.txt", "fsize": 4, "owner_username": "alice", "creation_date": "2024-03-01T12:00:00Z"},
				{"id": 11, "fname": "/data/b.txt"}
			]
		}`)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	rows, err := c.ListResources(context.Background(), models.KindFile, "/data", models.PageOptions{Limit: 1000})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(10), rows[0].ID)
	assert.Equal(t, "/data/a.txt", rows[0].FName)
	assert.Equal(t, int64(4), rows[0].FSize)
	assert.Equal(t, "alice", rows[0].OwnerUsername)
	assert.Equal(t, 2024, rows[0].CreationDate.Year())

	// Loose rows: absent fields stay zero.
	assert.Equal(t, int64(0), rows[1].FSize)
	assert.Empty(t, rows[1].OwnerUsername)
}

func TestListResourcesKindSelectsEndpoint(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"count": 0, "results": []}`)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	for _, kind := range models.Kinds {
		_, err := c.ListResources(context.Background(), kind, "/", models.PageOptions{})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"/dirs/search/", "/files/search/", "/links/search/"}, paths)
}

func TestListResourcesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	_, err := c.ListResources(context.Background(), models.KindDir, "/", models.PageOptions{})
	assert.Error(t, err)
}

func TestMoveResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/files/move/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/a/x", body["src_path"])
		assert.Equal(t, "/b/x", body["dst_path"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	assert.NoError(t, c.MoveResource(context.Background(), "/a/x", "/b/x"))
}

func TestDeleteResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/links/42/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	assert.NoError(t, c.DeleteResource(context.Background(), 42, models.KindLink))
}

func TestTouchFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/touch/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/a/new.txt", body["path"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	assert.NoError(t, c.TouchFile(context.Background(), "/a/new.txt"))
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploadedfiles/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "/up/proj/x.txt", r.FormValue("upload_path"))

		file, header, err := r.FormFile("fname")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "x.txt", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	err := c.UploadFile(context.Background(), strings.NewReader("payload"), "/up/proj", "x.txt")
	assert.NoError(t, err)
}

func TestDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/download/", r.URL.Path)
		assert.Equal(t, "/a/hello.txt", r.URL.Query().Get("path"))
		fmt.Fprint(w, "hello world\n")
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	body, err := c.DownloadFile(context.Background(), "/a/hello.txt")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(data))
}

func TestDownloadFileMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewChrisClient(srv.URL, "")
	_, err := c.DownloadFile(context.Background(), "/a/nope")
	assert.Error(t, err)
}
