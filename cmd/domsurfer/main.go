/*
domsurfer queries HTML documents with CSS selectors from the command line.

It loads a local file or a URL, wraps the elements matching a selector and
prints them as a table, JSON or YAML.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jakopako/domsurfer/config"
	"github.com/jakopako/domsurfer/document"
	"github.com/jakopako/domsurfer/fetch"
	"github.com/jakopako/domsurfer/internal/suggest"
	"github.com/jakopako/domsurfer/log"
	"github.com/jakopako/domsurfer/output"
	"github.com/jakopako/domsurfer/surfer"
	"github.com/jakopako/domsurfer/utils"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

var version = "dev"

const name = "domsurfer"

var errNoMatch = errors.New("no matching element")

type VersionFlag string

func (v VersionFlag) Decode(_ *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                       { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

type cli struct {
	Version VersionFlag `short:"v" long:"version" help:"Print the version and exit."`
	Debug   bool        `short:"d" long:"debug" help:"Set log level to 'debug' and store fetched pages for debugging."`
	Config  string      `short:"c" long:"config" default:"./config.yaml" help:"The location of the configuration file. Defaults and environment variables are used if it does not exist."`

	Query   QueryCmd   `cmd:"" help:"Print the elements matching a selector."`
	Inspect InspectCmd `cmd:"" help:"Print attributes, data and inline style of a single element."`
}

type QueryCmd struct {
	Source   string `short:"s" required:"" help:"The file or URL to load."`
	Selector string `arg:"" help:"The CSS selector."`
	Attr     string `short:"a" help:"Print the value of this attribute instead of the text."`
	Closest  string `help:"Replace every match by its closest ancestor (or itself) matching this selector."`
	Format   string `short:"f" help:"The output format: table, json or yaml. Overrides the configured writer."`
	Suggest  int    `default:"3" help:"The maximum number of selectors suggested if nothing matches."`
}

func (q *QueryCmd) Run(cfg *config.Config) error {
	ctx := log.ContextWithLogger(context.Background(), slog.Default())
	doc, err := loadDocument(ctx, cfg, q.Source)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	s := surfer.New(ctx, doc)

	matches, err := s.Wrap(nil).Add(q.Selector)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	if q.Closest != "" {
		if matches, err = closestAll(s, matches, q.Closest); err != nil {
			slog.Error(err.Error())
			return err
		}
	}
	if matches.None() {
		slog.Warn("no elements found", slog.String("selector", q.Selector))
		if suggestions := suggest.Selectors(doc.Root(), q.Selector, q.Suggest); len(suggestions) > 0 {
			slog.Info(fmt.Sprintf("did you mean: %s", strings.Join(suggestions, ", ")))
		}
	}

	wc := cfg.Output
	if q.Format != "" {
		if wc.Type, err = writerType(q.Format); err != nil {
			return err
		}
	}
	writer, err := output.NewWriter(&wc)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	return writer.Write(collectResults(matches, q.Attr))
}

type InspectCmd struct {
	Source   string `short:"s" required:"" help:"The file or URL to load."`
	Selector string `arg:"" help:"The CSS selector. Only the first match is inspected."`
}

// inspection is what the inspect command prints.
type inspection struct {
	Tag        string            `yaml:"tag"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Data       map[string]string `yaml:"data,omitempty"`
	Style      surfer.StyleMap   `yaml:"style,omitempty"`
	Text       string            `yaml:"text,omitempty"`
	Children   int               `yaml:"children"`
}

func (ic *InspectCmd) Run(cfg *config.Config) error {
	ctx := log.ContextWithLogger(context.Background(), slog.Default())
	doc, err := loadDocument(ctx, cfg, ic.Source)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	matches, err := surfer.New(ctx, doc).Wrap(nil).Add(ic.Selector)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	if matches.None() {
		slog.Error(fmt.Sprintf("%v for selector %s", errNoMatch, ic.Selector))
		return errNoMatch
	}
	if !matches.HasOneElement() {
		slog.Warn(fmt.Sprintf("selector matches %d elements, inspecting the first one", matches.Len()))
	}
	return writeInspection(os.Stdout, inspect(matches.First()))
}

func inspect(e *surfer.Collection) inspection {
	n := e.FirstNode()
	info := inspection{
		Tag:      n.Data,
		Style:    e.CSS(),
		Text:     utils.ShortenString(utils.CollapseSpace(e.Text()), 80),
		Children: e.ChildNodes().Len(),
	}
	for _, a := range n.Attr {
		if info.Attributes == nil {
			info.Attributes = map[string]string{}
		}
		info.Attributes[a.Key] = a.Val
		if key, ok := strings.CutPrefix(a.Key, "data-"); ok {
			if info.Data == nil {
				info.Data = map[string]string{}
			}
			info.Data[key], _ = e.Data(key)
		}
	}
	return info
}

func writeInspection(w io.Writer, info inspection) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(info); err != nil {
		return err
	}
	return encoder.Close()
}

// loadDocument reads source from a URL (or from the mock fetcher if it is
// configured) or from a local file and marks the document ready.
func loadDocument(ctx context.Context, cfg *config.Config, source string) (*document.HTMLDocument, error) {
	var doc *document.HTMLDocument
	if isURL(source) || cfg.Fetcher.Type == fetch.MOCK_FETCHER_TYPE {
		f, err := fetch.NewFetcher(&cfg.Fetcher)
		if err != nil {
			return nil, err
		}
		defer f.Cancel()
		doc, err = document.Load(ctx, f, source, fetch.FetchOpts{Interaction: cfg.Fetcher.Interactions})
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()
		doc, err = document.Parse(file)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", source, err)
		}
		doc.SetLogger(log.LoggerFromContext(ctx).With(slog.String("file", source)))
	}
	doc.Ready()
	return doc, nil
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// closestAll maps every element of c to its closest ancestor matching
// selector. Elements without such an ancestor are dropped.
func closestAll(s *surfer.Surfer, c *surfer.Collection, selector string) (*surfer.Collection, error) {
	ancestors := s.Wrap(nil)
	var err error
	c.EachNode(func(_ int, n *html.Node) {
		if err != nil {
			return
		}
		var ancestor *html.Node
		if ancestor, err = s.Wrap(n).ClosestNode(selector); err == nil {
			_, err = ancestors.Add(ancestor)
		}
	})
	return ancestors, err
}

func collectResults(c *surfer.Collection, attr string) []output.Result {
	results := []output.Result{}
	c.Each(func(i int, e *surfer.Collection) {
		class, _ := e.Attr("class")
		value := utils.CollapseSpace(e.Text())
		if attr != "" {
			value, _ = e.Attr(attr)
		}
		results = append(results, output.Result{
			Index:   i,
			Tag:     e.FirstNode().Data,
			Classes: strings.Fields(class),
			Value:   value,
		})
	})
	return results
}

func writerType(format string) (string, error) {
	switch format {
	case "table":
		return output.STDOUT_WRITER_TYPE, nil
	case output.JSON_WRITER_TYPE, output.YAML_WRITER_TYPE:
		return format, nil
	}
	return "", fmt.Errorf("unknown format %s, must be one of [table, json, yaml]", format)
}

func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			return buildInfo.Main.Version
		}
	}
	return version
}

func main() {
	cli := cli{
		Version: VersionFlag(getVersion()),
	}

	ctx := kong.Parse(&cli,
		kong.Name(name),
		kong.UsageOnError(),
		kong.Vars{
			"version": string(cli.Version),
		})

	cfg, err := config.NewConfig(cli.Config)
	ctx.FatalIfErrorf(err)

	log.Debug = cli.Debug || cfg.Debug()
	log.InitializeDefaultLogger()

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
