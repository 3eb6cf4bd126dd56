package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/menuharvest/menuharvest/internal/fetch"
	"github.com/menuharvest/menuharvest/internal/logger"
	"github.com/menuharvest/menuharvest/internal/menu"
	"github.com/menuharvest/menuharvest/internal/output"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Extract menu documents from URLs or saved pages",
	Long: `Scrape restaurant pages and extract menu documents.

Each URL yields one menu document: {source, url, items, categories}.
Finding nothing is not an error; the document simply has no items.

Examples:
  # One or more restaurant homepages
  menuharvest scrape -u "https://a.example" -u "https://b.example"

  # Mapping-service listing via headless browser
  menuharvest scrape -u "https://maps.example.com/place/x" \
      --fetch-mode snapshot --source google_maps

  # Offline: a saved HTML file
  menuharvest scrape --input menu.html --url "https://a.example"`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	// Inputs
	flags.StringSliceP("url", "u", nil, "URL(s) to scrape (can be repeated)")
	flags.String("input", "", "read page content from a file instead of fetching")
	flags.String("source", "website", "content origin: website, google_maps")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")

	// Fetch settings
	flags.String("fetch-mode", "static", "fetch mode: static, snapshot")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.Duration("delay", 2*time.Second, "delay between restaurants")

	// Extraction settings
	flags.String("keywords", "", "YAML/JSON file overriding the heuristic keyword sets")
	flags.Int("max-pages", menu.DefaultMaxMenuPages, "max located menu pages to follow per site")

	_ = viper.BindPFlag("keywords", flags.Lookup("keywords"))
	_ = viper.BindPFlag("max_pages", flags.Lookup("max-pages"))
}

func runScrape(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	urls, _ := cmd.Flags().GetStringSlice("url")
	inputPath, _ := cmd.Flags().GetString("input")
	if len(urls) == 0 && inputPath == "" {
		return cmd.Help()
	}

	sourceStr, _ := cmd.Flags().GetString("source")
	source := menu.Source(sourceStr)
	if source != menu.SourceWebsite && source != menu.SourceGoogleMaps {
		return fmt.Errorf("unknown source: %s (use 'website' or 'google_maps')", sourceStr)
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	writer, cleanup, err := buildWriter(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Offline mode: one saved page, no fetching at all.
	if inputPath != "" {
		content, err := os.ReadFile(inputPath) //#nosec G304 -- CLI reads a user-specified page file
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		pageURL := ""
		if len(urls) > 0 {
			pageURL = urls[0]
		}
		doc := engine.ExtractDocument(menu.Page{URL: pageURL, Source: source, Content: string(content)})
		logger.Info("extracted", "url", pageURL, "items", len(doc.Items), "source", doc.Source)
		if err := writer.Write(doc); err != nil {
			return err
		}
		return writer.Flush()
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	fetchMode, _ := cmd.Flags().GetString("fetch-mode")

	var fetcher fetch.Fetcher
	switch fetchMode {
	case "snapshot":
		fetcher, err = fetch.NewSnapshot(fetch.Options{Timeout: timeout})
		if err != nil {
			return fmt.Errorf("failed to create snapshot fetcher: %w", err)
		}
	case "static", "":
		fetcher = fetch.NewStatic(fetch.Options{Timeout: timeout})
	default:
		return fmt.Errorf("unknown fetch mode: %s (use 'static' or 'snapshot')", fetchMode)
	}
	defer func() { _ = fetcher.Close() }()

	contentFn := func(ctx context.Context, url string) (string, error) {
		content, err := fetcher.Fetch(ctx, url, fetch.Options{})
		if err != nil {
			return "", err
		}
		return content.HTML, nil
	}

	delay, _ := cmd.Flags().GetDuration("delay")

	found := 0
	for i, url := range urls {
		if i > 0 {
			waitBetween(ctx, delay)
		}
		if ctx.Err() != nil {
			break
		}

		logger.Info("scraping", "url", url, "fetcher", fetcher.Type())

		// A fetch failure is the same as an empty page: the engine returns
		// a zero-item document and we report it, not an error.
		var html string
		if content, err := fetcher.Fetch(ctx, url, fetch.Options{}); err != nil {
			logger.Warn("fetch failed", "url", url, "error", err)
		} else {
			html = content.HTML
		}

		doc := engine.Extract(ctx, menu.Page{URL: url, Source: source, Content: html}, contentFn)
		if len(doc.Items) > 0 {
			found++
		}
		logger.Info("extracted", "url", url, "items", len(doc.Items), "source", doc.Source)

		if err := writer.Write(doc); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	logger.Info("scrape complete", "total", len(urls), "with_menu", found)
	return nil
}

// waitBetween pauses between restaurants, returning early on cancellation.
func waitBetween(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// buildEngine assembles the engine config from flags/config file.
func buildEngine() (*menu.Engine, error) {
	cfg := menu.DefaultConfig()
	cfg.MaxMenuPages = viper.GetInt("max_pages")

	if path := viper.GetString("keywords"); path != "" {
		kw, err := menu.KeywordsFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Keywords = kw
		logger.Debug("keyword sets overridden", "path", path)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid extraction config: %w", err)
	}

	return menu.New(cfg), nil
}

// buildWriter sets up the output writer and its cleanup.
func buildWriter(cmd *cobra.Command) (output.Writer, func(), error) {
	outFile := os.Stdout
	cleanup := func() {}
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		outFile = f
		cleanup = func() { _ = f.Close() }
	}

	formatStr, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(outFile, output.Format(formatStr))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return writer, cleanup, nil
}
