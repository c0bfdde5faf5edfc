// Command trendwatch runs one trend-analysis cycle over a JSON article
// batch and prints the report.
//
// Usage:
//
//	trendwatch -articles articles.json [-config trendwatch.yaml] [-log-level debug]
//
// Pass "-" as the articles path to read from stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"trendwatch/internal/config"
	"trendwatch/internal/logging"
	"trendwatch/internal/report"
	"trendwatch/internal/trend"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults used when empty)")
	articlesPath := flag.String("articles", "-", "path to JSON articles file, or - for stdin")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	logging.SetLevel(*logLevel)

	if err := run(*configPath, *articlesPath); err != nil {
		logging.Error("trendwatch failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, articlesPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	articles, err := readArticles(articlesPath)
	if err != nil {
		return err
	}

	engine, err := trend.New(cfg, trend.NewTopicStore())
	if err != nil {
		return err
	}
	defer engine.Reset()

	result, err := engine.Analyze(context.Background(), articles)
	if err != nil {
		return err
	}

	fmt.Print(report.Render(result))
	return nil
}

func readArticles(path string) ([]trend.Article, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open articles: %w", err)
		}
		defer f.Close()
		r = f
	}

	var articles []trend.Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("parse articles: %w", err)
	}
	return articles, nil
}
