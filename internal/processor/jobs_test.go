package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/geoz/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProcessJobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in", "a.wkt"), squareWKT)
	writeFile(t, filepath.Join(dir, "in", "b.txt"), `{"type":"Point","coordinates":[1,2,3]}`)
	writeFile(t, filepath.Join(dir, "in", "bad.wkt"), "POINT Z EMPTY")

	jobs := []config.Job{
		{Name: "a", Input: filepath.Join(dir, "in", "a.wkt"), Output: filepath.Join(dir, "out", "nested", "a.geojson")},
		{Name: "b", Input: filepath.Join(dir, "in", "b.txt"), Output: filepath.Join(dir, "out", "b.out"), From: "geojson", To: "wkt"},
		{Name: "bad", Input: filepath.Join(dir, "in", "bad.wkt"), Output: filepath.Join(dir, "out", "bad.wkb")},
		{Name: "missing", Input: filepath.Join(dir, "in", "missing.wkt"), Output: filepath.Join(dir, "out", "missing.wkb")},
	}

	results := ProcessJobs(context.Background(), nil, jobs, 3, false, Options{Minify: true})
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, jobs[i].Name, r.Job.Name, "results keep job order")
	}

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Error(t, results[2].Err)
	assert.ErrorIs(t, results[3].Err, os.ErrNotExist)

	out, err := os.ReadFile(filepath.Join(dir, "out", "b.out"))
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (1 2 3)\n", string(out))

	_, err = os.Stat(filepath.Join(dir, "out", "bad.wkb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProcessFileSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	job := config.Job{Name: "a", Input: filepath.Join(dir, "a.wkt"), Output: filepath.Join(dir, "a.wkb")}
	writeFile(t, job.Input, squareWKT)
	writeFile(t, job.Output, "keep")

	skipped, err := ProcessFile(context.Background(), nil, job, false, Options{})
	require.NoError(t, err)
	assert.True(t, skipped)
	data, err := os.ReadFile(job.Output)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	skipped, err = ProcessFile(context.Background(), nil, job, true, Options{})
	require.NoError(t, err)
	assert.False(t, skipped)
	data, err = os.ReadFile(job.Output)
	require.NoError(t, err)
	assert.NotEqual(t, "keep", string(data))
}

func TestProcessJobsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ProcessJobs(ctx, nil, []config.Job{{Name: "a", Input: "a.wkt", Output: "a.wkb"}}, 0, false, Options{})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
