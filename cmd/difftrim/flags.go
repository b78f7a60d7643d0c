package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type AppFlags struct {
	InputPath        string
	OutputPath       string
	Extensions       []string
	KeepLines        int
	GlobalConfigFile string
}

// extListFlag collects repeatable -ext values; each value may itself be a
// comma-separated list.
type extListFlag []string

func (e *extListFlag) String() string {
	return strings.Join(*e, ",")
}

func (e *extListFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		*e = append(*e, part)
	}
	return nil
}

func ParseFlags() AppFlags {
	var exts extListFlag
	flag.Var(&exts, "ext", "File extension to target (repeatable, e.g. -ext .har -ext .json). If omitted, every oversized section is truncated.")
	flag.Var(&exts, "e", "Alias for -ext")

	keepLines := flag.Int("lines", 0, "Number of leading lines to keep per oversized section (overrides config file if set)")
	keepLinesAlias := flag.Int("n", 0, "Alias for -lines")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input-path> <output-path>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	flags := AppFlags{Extensions: exts}

	if *keepLines > 0 {
		flags.KeepLines = *keepLines
	} else if *keepLinesAlias > 0 {
		flags.KeepLines = *keepLinesAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}
	flags.InputPath = args[0]
	flags.OutputPath = args[1]

	return flags
}
