package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aleister1102/difftrim/internal/cleaner"
	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/aleister1102/difftrim/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	rootDir := flag.String("dir", ".", "Workspace root to clean")
	rootDirAlias := flag.String("d", "", "Alias for -dir")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	root := *rootDir
	if *rootDirAlias != "" {
		root = *rootDirAlias
	}

	configPath := *globalConfigFile
	if configPath == "" {
		configPath = *globalConfigFileAlias
	}

	gCfg, err := config.LoadGlobalConfig(configPath, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", configPath, err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	workspaceCleaner, err := cleaner.NewCleanerBuilder().
		WithConfig(gCfg.CleanerConfig).
		WithLogger(zLogger).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize cleaner")
	}

	result, err := workspaceCleaner.Clean(root)
	if err != nil {
		if errors.Is(err, errorwrapper.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", root)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Removed %d log files and %d artifact directories (%d failures)\n",
		result.LogFilesRemoved, result.DirsRemoved, result.Failures)

	if result.Failures > 0 {
		os.Exit(1)
	}
}
