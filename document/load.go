package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jakopako/domsurfer/fetch"
	"github.com/jakopako/domsurfer/log"
)

// Load fetches url with f and parses the result. The returned document is
// not ready yet; call Ready once all callbacks are registered.
func Load(ctx context.Context, f fetch.Fetcher, url string, opts fetch.FetchOpts) (*HTMLDocument, error) {
	logger := log.LoggerFromContext(ctx).With(slog.String("url", url))
	body, err := f.Fetch(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", url, err)
	}
	d, err := Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", url, err)
	}
	d.SetLogger(logger)
	logger.Debug("loaded document", slog.Int("bytes", len(body)))
	return d, nil
}
