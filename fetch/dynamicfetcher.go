package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/jakopako/domsurfer/log"
)

const (
	defaultReadySelector    = "body"
	defaultInteractionDelay = 500 * time.Millisecond
)

// The DynamicFetcher loads pages in a headless chrome so that the content
// rendered by javascript ends up in the document.
type DynamicFetcher struct {
	*FetcherConfig
	allocContext context.Context
	cancelAlloc  context.CancelFunc
}

func NewDynamicFetcher(fc *FetcherConfig) *DynamicFetcher {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(1920, 1080), // some pages hide elements on mobile
	)
	if fc.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(fc.UserAgent))
	}
	allocContext, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	return &DynamicFetcher{
		FetcherConfig: fc,
		allocContext:  allocContext,
		cancelAlloc:   cancelAlloc,
	}
}

func (d *DynamicFetcher) Cancel() {
	d.cancelAlloc()
}

type stepKind int

const (
	stepNavigate stepKind = iota
	stepWaitReady
	stepPause
	stepClick
	stepScroll
)

// A step is one thing the browser does while fetching a page. target is
// the url for stepNavigate and a selector for stepWaitReady and stepClick.
type step struct {
	kind   stepKind
	target string
	delay  time.Duration
}

// plan lists the steps for fetching urlStr: load the page, wait until the
// ready selector is in the document, then run the interactions. Selectors
// are compiled up front so that typos fail before chrome is started.
// Interactions of unknown type are skipped with a warning.
func (d *DynamicFetcher) plan(urlStr string, opts FetchOpts, logger *slog.Logger) ([]step, error) {
	ready := d.ReadySelector
	if ready == "" {
		ready = defaultReadySelector
	}
	if _, err := cascadia.Compile(ready); err != nil {
		return nil, fmt.Errorf("invalid ready selector '%s': %w", ready, err)
	}
	steps := []step{
		{kind: stepNavigate, target: urlStr},
		{kind: stepWaitReady, target: ready},
	}
	if d.PageLoadWaitMS > 0 {
		steps = append(steps, step{kind: stepPause, delay: time.Duration(d.PageLoadWaitMS) * time.Millisecond})
	}

	for j, ia := range opts.Interaction {
		delay := defaultInteractionDelay
		if ia.Delay > 0 {
			delay = time.Duration(ia.Delay) * time.Millisecond
		}
		switch ia.Type {
		case InteractionTypeClick:
			if _, err := cascadia.Compile(ia.Selector); err != nil {
				return nil, fmt.Errorf("invalid selector '%s' in interaction %d: %w", ia.Selector, j, err)
			}
			for range max(ia.Count, 1) {
				steps = append(steps,
					step{kind: stepClick, target: ia.Selector},
					step{kind: stepPause, delay: delay})
			}
		case InteractionTypeScroll:
			steps = append(steps,
				step{kind: stepScroll},
				step{kind: stepPause, delay: delay})
		default:
			logger.Warn(fmt.Sprintf("unknown interaction type %s", ia.Type), slog.Int("interaction", j))
		}
	}
	return steps, nil
}

func (s step) action(logger *slog.Logger) chromedp.Action {
	switch s.kind {
	case stepNavigate:
		return chromedp.Navigate(s.target)
	case stepWaitReady:
		return chromedp.WaitReady(s.target, chromedp.ByQuery)
	case stepClick:
		return chromedp.ActionFunc(func(ctx context.Context) error {
			var nodes []*cdp.Node
			if err := chromedp.Nodes(s.target, &nodes, chromedp.AtLeast(0)).Do(ctx); err != nil {
				return err
			}
			if len(nodes) == 0 {
				logger.Debug("nothing to click", slog.String("selector", s.target))
				return nil
			}
			return chromedp.MouseClickNode(nodes[0]).Do(ctx)
		})
	case stepScroll:
		return chromedp.KeyEvent(kb.End)
	}
	return chromedp.Sleep(s.delay)
}

func (d *DynamicFetcher) Fetch(ctx context.Context, urlStr string, opts FetchOpts) (string, error) {
	logger := log.LoggerFromContext(ctx).With(slog.String("fetcher", "dynamic"), slog.String("url", urlStr))
	steps, err := d.plan(urlStr, opts, logger)
	if err != nil {
		return "", err
	}
	logger.Debug("fetching page", slog.String("user-agent", d.UserAgent), slog.Int("steps", len(steps)))

	actions := []chromedp.Action{}
	if log.Debug {
		actions = append(actions, logChromeVersion(logger))
	}
	for _, s := range steps {
		actions = append(actions, s.action(logger))
	}

	var body string
	actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
		node, err := dom.GetDocument().Do(ctx)
		if err != nil {
			return err
		}
		body, err = dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
		return err
	}))
	if log.Debug {
		actions = append(actions, d.screenshot(urlStr, logger))
	}

	chromeCtx, cancel := chromedp.NewContext(d.allocContext)
	defer cancel()
	if err := chromedp.Run(chromeCtx, actions...); err != nil {
		return "", err
	}

	if log.Debug {
		writeHTMLToFile(ctx, urlStr, body, d.DebugDir)
	}
	return body, nil
}

func logChromeVersion(logger *slog.Logger) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		protocolVersion, product, _, _, _, err := browser.GetVersion().Do(ctx)
		if err != nil {
			logger.Warn("failed to get chrome version", slog.String("err", err.Error()))
			return nil
		}
		logger.Debug("chrome", slog.String("product", product), slog.String("protocol", protocolVersion))
		return nil
	})
}

// screenshot saves a png of the rendered page next to the debug html.
func (d *DynamicFetcher) screenshot(urlStr string, logger *slog.Logger) chromedp.Action {
	var buf []byte
	filename := filepath.Join(d.DebugDir, debugFileName(urlStr, "png"))
	return chromedp.Tasks{
		chromedp.CaptureScreenshot(&buf),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if d.DebugDir != "" {
				if err := os.MkdirAll(d.DebugDir, os.ModePerm); err != nil {
					return fmt.Errorf("failed to create debug directory: %w", err)
				}
			}
			logger.Debug(fmt.Sprintf("writing screenshot to file %s", filename))
			return os.WriteFile(filename, buf, 0644)
		}),
	}
}
