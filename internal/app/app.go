package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"colony/internal/sims/colony"
)

// Run builds a world from cfg, populates it once and writes the rendered grid
// to out.
func Run(cfg *Config, log *zap.Logger, out io.Writer) error {
	world := colony.NewWithConfig(cfg.Colony)
	world.SetLogger(log)

	if err := world.Initialize(cfg.Colony.Bases); err != nil {
		return err
	}

	st := world.Stats()
	log.Info("grid generated",
		zap.String("generator", world.Name()),
		zap.Int("size", world.Size()),
		zap.Int64("seed", cfg.Colony.Seed),
		zap.Int("bases", st.Bases),
		zap.Int("trees", st.Trees),
		zap.Int("workers", st.Workers))

	if _, err := io.WriteString(out, world.Render()); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	return nil
}
