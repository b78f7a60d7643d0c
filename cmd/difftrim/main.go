package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/aleister1102/difftrim/internal/logger"
	"github.com/aleister1102/difftrim/internal/truncate"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	// CLI flags override config file values
	if flags.KeepLines > 0 {
		gCfg.TruncateConfig.KeepLines = flags.KeepLines
	}
	if len(flags.Extensions) > 0 {
		gCfg.TruncateConfig.MatchExtensions = flags.Extensions
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	truncator, err := truncate.NewTruncatorBuilder().
		WithConfig(gCfg.TruncateConfig).
		WithLogger(zLogger).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize truncator")
	}

	stats, err := truncator.TruncateFile(flags.InputPath, flags.OutputPath)
	if err != nil {
		if errors.Is(err, errorwrapper.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: input file not found: %s\n", flags.InputPath)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Truncated %d of %d sections, removed %d lines\n",
		stats.SectionsTruncated, stats.SectionsTotal, stats.LinesRemoved)
}
