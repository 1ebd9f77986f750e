// classify-demo reads a requirements document (file argument or stdin),
// runs the tiered classification pipeline against OpenRouter, records
// the run, and prints the resulting classification as YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"reqstage/internal/core"
	"reqstage/internal/extract"
	"reqstage/internal/llm"
	"reqstage/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := core.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.OpenRouterAPIKey == "" {
		fmt.Println("❌ OPENROUTER_API_KEY not set")
		fmt.Println("   Set it with: export OPENROUTER_API_KEY=sk-or-v1-...")
		os.Exit(1)
	}

	source, data, err := readDocument()
	if err != nil {
		return err
	}

	client, err := llm.NewClient(&llm.Config{
		APIKey:       cfg.OpenRouterAPIKey,
		BaseURL:      "https://openrouter.ai/api/v1",
		DefaultModel: cfg.DefaultModel,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	logger := core.NewLogger(cfg.LogLevel)
	repo := repository.NewRepository(cfg.DataDir)
	service := core.NewService(logger, extract.NewPlainTextExtractor(), client.GenerateText, repo)

	record, err := service.ClassifyDocument(context.Background(), source, data)
	if err != nil {
		return fmt.Errorf("classify %s: %w", source, err)
	}

	fmt.Printf("🤖 %s classified via %q tier (%d requirements)\n\n", source, record.Tier, record.Stages.Total())

	out, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Print(string(out))

	return nil
}

func readDocument() (string, []byte, error) {
	if len(os.Args) > 1 {
		path := os.Args[1]
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("read %s: %w", path, err)
		}
		return path, data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", nil, fmt.Errorf("read stdin: %w", err)
	}
	return "stdin", data, nil
}
