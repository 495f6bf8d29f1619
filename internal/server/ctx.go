package server

import (
	"os"
	"sort"

	"github.com/woozymasta/geoz/internal/config"
	"github.com/woozymasta/geoz/internal/processor"

	"github.com/rs/zerolog/log"
)

// DefaultMaxBody limits the size of a conversion request body.
const DefaultMaxBody = 32 << 20

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	// Jobs whose output exists on disk, by name.
	Jobs     map[string]config.Job
	JobNames []string
	Options  processor.Options
	MaxBody  int64
}

// NewServerContext indexes the outputs of cfg that can be served.
// A nil cfg serves conversions only.
func NewServerContext(cfg *config.Config, opts processor.Options) *ServerContext {
	s := &ServerContext{
		Jobs:    make(map[string]config.Job),
		Options: opts,
		MaxBody: DefaultMaxBody,
	}
	if cfg == nil {
		return s
	}

	log.Info().Int("config_jobs_count", len(cfg.Jobs)).Msg("Initializing server context")

	for _, job := range cfg.Jobs {
		info, err := os.Stat(job.Output)
		if err != nil || info.IsDir() {
			log.Warn().
				Str("job", job.Name).
				Str("path", job.Output).
				Msg("Skipping job: output not found")
			continue
		}

		log.Debug().
			Str("job", job.Name).
			Int64("size", info.Size()).
			Msg("Job output added to context")

		s.Jobs[job.Name] = job
		s.JobNames = append(s.JobNames, job.Name)
	}

	sort.Strings(s.JobNames)

	log.Info().
		Int("valid_jobs_count", len(s.JobNames)).
		Msg("Server context initialized successfully")

	return s
}
