// Package fetch loads the HTML of a page so that it can be turned into a
// document.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jakopako/domsurfer/log"
)

// A Fetcher allows to fetch the content of a web page
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts FetchOpts) (string, error)
	// Cancel releases resources held by the fetcher, eg. a browser.
	Cancel()
}

type FetcherType string

const (
	STATIC_FETCHER_TYPE  FetcherType = "static"
	DYNAMIC_FETCHER_TYPE FetcherType = "dynamic"
	MOCK_FETCHER_TYPE    FetcherType = "mock"
)

func DefaultFetcherType() FetcherType {
	return STATIC_FETCHER_TYPE
}

// MockPage is a page served by the mock fetcher.
type MockPage struct {
	Url     string `yaml:"url"`
	Content string `yaml:"content"`
}

// FetcherConfig defines how pages are fetched.
type FetcherConfig struct {
	Type           FetcherType   `yaml:"type" env:"DOMSURFER_FETCHER" env-default:"static"`
	UserAgent      string        `yaml:"user_agent" env:"DOMSURFER_USER_AGENT" env-default:"domsurfer"`
	ReadySelector  string        `yaml:"ready_selector"`    // dynamic fetcher only, defaults to body
	PageLoadWaitMS int           `yaml:"page_load_wait_ms"` // dynamic fetcher only, extra wait once ready
	DebugDir       string        `yaml:"debug_dir"`
	Interactions   []Interaction `yaml:"interactions"`
	MockPages      []MockPage    `yaml:"mock_pages"`
}

// Interaction represents a simple user interaction with a webpage
// that is performed before the page content is read.
type Interaction struct {
	Type     string `yaml:"type,omitempty"`
	Selector string `yaml:"selector,omitempty"`
	Count    int    `yaml:"count,omitempty"`
	Delay    int    `yaml:"delay,omitempty"`
}

const (
	InteractionTypeClick  = "click"
	InteractionTypeScroll = "scroll"
)

// FetchOpts are per request options.
type FetchOpts struct {
	Interaction []Interaction
}

// NewFetcher returns a new fetcher depending on the fetcher type
func NewFetcher(fc *FetcherConfig) (Fetcher, error) {
	switch fc.Type {
	case STATIC_FETCHER_TYPE, "":
		return NewStaticFetcher(fc), nil
	case DYNAMIC_FETCHER_TYPE:
		return NewDynamicFetcher(fc), nil
	case MOCK_FETCHER_TYPE:
		return NewMockFetcher(fc), nil
	default:
		return nil, fmt.Errorf("fetcher of type '%s' not implemented", fc.Type)
	}
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// debugFileName derives a file name from a url, eg.
// https://example.com/events?page=2 -> example.com_events_page_2.html
func debugFileName(urlStr, ext string) string {
	name := urlStr
	if u, err := url.Parse(urlStr); err == nil && u.Host != "" {
		name = u.Host + u.Path
		if u.RawQuery != "" {
			name += "_" + u.RawQuery
		}
	}
	name = unsafeFileChars.ReplaceAllString(name, "_")
	return name + "." + ext
}

func writeHTMLToFile(ctx context.Context, urlStr, content, dir string) {
	logger := log.LoggerFromContext(ctx)
	if dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Warn("failed to create debug directory", slog.String("err", err.Error()))
			return
		}
	}
	filename := filepath.Join(dir, debugFileName(urlStr, "html"))
	logger.Debug(fmt.Sprintf("writing html to file %s", filename), slog.String("url", urlStr))
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		logger.Warn(fmt.Sprintf("failed to write html file: %v", err))
	}
}
