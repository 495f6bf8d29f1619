package processor

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// maxRemoteSize caps downloads of remote inputs.
const maxRemoteSize = 256 << 20

// ReadSource returns the content of a local path or an http(s) URL.
func ReadSource(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	if client == nil {
		client = http.DefaultClient
	}

	log.Debug().Str("url", source).Msg("Downloading source")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("download failed: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxRemoteSize {
		return nil, errors.Errorf("download exceeds %d bytes", maxRemoteSize)
	}
	return data, nil
}
