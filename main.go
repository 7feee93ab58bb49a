package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"product_content_pipeline/config"
	"product_content_pipeline/generator"
	"product_content_pipeline/pipeline"
	"product_content_pipeline/server"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config.json")
	inputPath := flag.String("input", "", "path to product JSON file")
	outDir := flag.String("out", "", "output directory (overrides config.output_dir)")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	log := newLogger(*verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	driver, err := buildDriver(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serve {
		srv, err := server.New(driver, log.Named("server"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Info("starting web server", zap.String("addr", listen))
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		os.Exit(1)
	}
	input, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := driver.Run(context.Background(), input)
	if state.Failed() {
		fmt.Fprintln(os.Stderr, "run failed:")
		for _, e := range state.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}
	for _, f := range state.OutputFiles {
		fmt.Println(f)
	}
}

func buildDriver(cfg config.Config, log *zap.Logger) (*pipeline.Driver, error) {
	llm, err := generator.NewOpenAILLM(generator.Settings{Model: cfg.Model, BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, err
	}
	gw, err := generator.NewGateway(llm, cfg.APIKeys, log.Named("gateway"))
	if err != nil {
		return nil, err
	}
	return pipeline.NewDriver(gw, pipeline.NewWriter(cfg.OutputDir), log.Named("pipeline")), nil
}

func readInput(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("input must be a JSON object: %w", err)
	}
	if len(input) == 0 {
		return nil, fmt.Errorf("product data is empty")
	}
	return input, nil
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
