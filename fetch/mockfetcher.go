package fetch

import (
	"context"
	"errors"

	"github.com/jakopako/domsurfer/log"
)

// ErrPageNotFound is returned by the MockFetcher for unknown urls.
var ErrPageNotFound = errors.New("page not found")

// The MockFetcher serves the pages configured in FetcherConfig.MockPages.
type MockFetcher struct {
	*FetcherConfig
	pagesMap map[string]string
}

func NewMockFetcher(fc *FetcherConfig) *MockFetcher {
	mf := &MockFetcher{
		FetcherConfig: fc,
		pagesMap:      map[string]string{},
	}
	for _, p := range fc.MockPages {
		mf.pagesMap[p.Url] = p.Content
	}
	return mf
}

func (m *MockFetcher) Fetch(ctx context.Context, urlStr string, opts FetchOpts) (string, error) {
	if p, ok := m.pagesMap[urlStr]; ok {
		if log.Debug {
			writeHTMLToFile(ctx, urlStr, p, m.DebugDir)
		}
		return p, nil
	}

	return "", ErrPageNotFound
}

// To comply with the Fetcher interface
func (m *MockFetcher) Cancel() {}
