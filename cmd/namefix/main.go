package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/aleister1102/difftrim/internal/logger"
	"github.com/aleister1102/difftrim/internal/renamer"
	"github.com/rs/zerolog"
)

func main() {
	rootDir := flag.String("dir", ".", "Directory tree to rename files in")
	rootDirAlias := flag.String("d", "", "Alias for -dir")

	apply := flag.Bool("apply", false, "Execute the renames. Without this flag only the plan is printed.")

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

	fileRenamer, err := renamer.NewRenamerBuilder().
		WithConfig(gCfg.RenamerConfig).
		WithLogger(zLogger).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize renamer")
	}

	plan, err := fileRenamer.Plan(root)
	if err != nil {
		if errors.Is(err, errorwrapper.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", root)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if len(plan) == 0 {
		fmt.Println("No files to rename.")
		return
	}

	for _, rename := range plan {
		fmt.Printf("FROM: %s\n  TO: %s\n", rename.Path, rename.NewPath())
	}
	fmt.Printf("Total files to rename: %d\n", len(plan))

	if !*apply {
		fmt.Println("Dry run only. Re-run with -apply to execute.")
		return
	}

	result := fileRenamer.Apply(plan)
	fmt.Printf("Summary: %d renamed, %d errors\n", result.Renamed, result.Failed)

	if result.Failed > 0 {
		os.Exit(1)
	}
}
