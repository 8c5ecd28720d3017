// Package processor reads GeoJSON documents, validates them and reports on
// their content.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

var (
	ErrRemoteDisabled = errors.New("remote sources are disabled")
	ErrTooLarge       = errors.New("document exceeds size limit")
)

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads a document from a file path, Stdin or an http(s) URL. A nil
// client disables remote sources. At most limit bytes are accepted.
func Load(ctx context.Context, client *http.Client, source string, limit int64) ([]byte, error) {
	switch {
	case source == "" || source == Stdin:
		return readLimited(os.Stdin, limit)
	case IsRemote(source):
		if client == nil {
			return nil, fmt.Errorf("%s: %w", source, ErrRemoteDisabled)
		}
		return fetch(ctx, client, source, limit)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = f.Close() }()

	return readLimited(f, limit)
}

// fetch downloads a document.
func fetch(ctx context.Context, client *http.Client, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}

	log.Debug().
		Str("source", url).
		Str("content_type", resp.Header.Get("Content-Type")).
		Int64("content_length", resp.ContentLength).
		Msg("Document downloaded")

	return readLimited(resp.Body, limit)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
