// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/woozymasta/geoz/internal/processor"

	"github.com/rs/zerolog/log"
)

const etagCap = 64

// FormatInfo describes one supported format.
type FormatInfo struct {
	Name        processor.Format `json:"name"`
	ContentType string           `json:"content_type"`
}

// JobInfo describes a served job output.
type JobInfo struct {
	Name   string           `json:"name"`
	Format processor.Format `json:"format,omitempty"`
	Size   int64            `json:"size"`
}

// Routes registers every handler on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/formats", s.HandleFormats)
	mux.HandleFunc("POST /api/convert", s.HandleConvert)
	mux.HandleFunc("GET /api/jobs", s.HandleJobsList)
	mux.HandleFunc("GET /jobs/{name}", s.HandleJobOutput)
	return mux
}

// HandleFormats serves the list of supported formats.
func (s *ServerContext) HandleFormats(w http.ResponseWriter, r *http.Request) {
	formats := processor.Formats()
	out := make([]FormatInfo, 0, len(formats))
	for _, f := range formats {
		out = append(out, FormatInfo{Name: f, ContentType: f.ContentType()})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleConvert converts the request body. Query: from, to, split, minify.
// Bad parameters answer 400, input that does not decode answers 422.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := processor.ParseFormat(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := processor.ParseFormat(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := s.Options
	if opts.Split, err = queryBool(q.Get("split"), opts.Split); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if opts.Minify, err = queryBool(q.Get("minify"), opts.Minify); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := processor.Convert(body, from, to, opts)
	if err != nil {
		log.Debug().Err(err).Str("from", string(from)).Str("to", string(to)).Msg("Conversion rejected")
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", to.ContentType())
	_, _ = w.Write(out)
}

// HandleJobsList serves the jobs whose output can be downloaded.
func (s *ServerContext) HandleJobsList(w http.ResponseWriter, r *http.Request) {
	out := make([]JobInfo, 0, len(s.JobNames))
	for _, name := range s.JobNames {
		job := s.Jobs[name]
		info := JobInfo{Name: name}
		if f, err := processor.ResolveFormat(job.To, job.Output); err == nil {
			info.Format = f
		}
		if st, err := os.Stat(job.Output); err == nil {
			info.Size = st.Size()
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleJobOutput serves the output file of a job.
func (s *ServerContext) HandleJobOutput(w http.ResponseWriter, r *http.Request) {
	job, ok := s.Jobs[r.PathValue("name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	contentType := ""
	if f, err := processor.ResolveFormat(job.To, job.Output); err == nil {
		contentType = f.ContentType()
	}

	if !s.serveFile(w, r, job.Output, contentType) {
		http.NotFound(w, r)
	}
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}

func queryBool(v string, fallback bool) (bool, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
