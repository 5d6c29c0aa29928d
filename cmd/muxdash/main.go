package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/muxdash/internal/cli"
	"github.com/alexanderramin/muxdash/internal/config"
	"github.com/alexanderramin/muxdash/internal/intelligence"
	"github.com/alexanderramin/muxdash/internal/llm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir, err := config.DefaultDir()
	if err != nil {
		return err
	}

	cachePath, err := intelligence.DefaultCachePath()
	if err != nil {
		return err
	}

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOpenAIClient(llmCfg, observer)

	cache := intelligence.NewRecommendationCache(cachePath)
	advisor := intelligence.NewAdvisorService(client, llmCfg, cache)

	app := &cli.App{
		Loader:  config.NewLoader(configDir),
		Advisor: advisor,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
