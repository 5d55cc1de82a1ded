package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"colony/internal/app"
	"colony/internal/logs"
	"colony/internal/sims/colony"
)

func main() {
	cfg := app.NewConfig()
	fs := pflag.NewFlagSet("colony", pflag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Load(fs); err != nil {
		fmt.Fprintln(os.Stderr, "colony:", err)
		os.Exit(1)
	}

	if cfg.PrintConfig {
		if err := printConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "colony:", err)
			os.Exit(1)
		}
		return
	}

	if err := logs.Init("colony", cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, "colony:", err)
		os.Exit(1)
	}
	defer logs.Sync()

	if err := app.Run(cfg, logs.L(), os.Stdout); err != nil {
		logs.Error("generation failed", zap.Error(err))
		_ = logs.Sync()
		if errors.Is(err, colony.ErrCapacity) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printConfig(w io.Writer, cfg *app.Config) error {
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
