package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/geoz/internal/config"
)

func TestReadSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/point.wkt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("POINT Z (1 2 3)"))
	}))
	defer srv.Close()

	data, err := ReadSource(context.Background(), srv.Client(), srv.URL+"/point.wkt")
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (1 2 3)", string(data))

	_, err = ReadSource(context.Background(), srv.Client(), srv.URL+"/missing.wkt")
	assert.EqualError(t, err, "download failed: 404")

	path := filepath.Join(t.TempDir(), "local.wkt")
	writeFile(t, path, "POINT Z (4 5 6)")
	data, err = ReadSource(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (4 5 6)", string(data))
}

func TestReadSourceCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("POINT Z (1 2 3)"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadSource(ctx, srv.Client(), srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFileRemoteInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"Point","coordinates":[1,2]}`))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "point.wkt")
	job := config.Job{Name: "remote", Input: srv.URL + "/point", Output: out, From: "geojson"}

	skipped, err := ProcessFile(context.Background(), srv.Client(), job, false, Options{})
	require.NoError(t, err)
	assert.False(t, skipped)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (1 2 0)\n", string(data))
}
