// Command specgen generates typed specifications from annotated predicate
// declarations.
//
//	// @Specification
//	var IsOlderThan = func(n int) *expression.Predicate[Person] { ... }
//
// produces IsOlderThanSpecification and NewIsOlderThanSpecification(n int) in
// person_specification.go. Typical use:
//
//	//go:generate go run github.com/go-leo/specification/cmd/specgen
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-leo/specification/cmd/internal"
	"github.com/go-leo/specification/logger"
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of specgen:\n")
	fmt.Fprintf(os.Stderr, "\tspecgen [flags] [packages]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	showVersion := flag.Bool("version", false, "print the version and exit")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error (env SPECGEN_LOG_LEVEL)")
	logFormat := flag.String("log-format", cfg.LogFormat, "log format: console or json (env SPECGEN_LOG_FORMAT)")
	manifest := flag.String("manifest", cfg.Manifest, "write the discovered members and diagnostics to this file, as YAML for .yaml or .yml and JSON otherwise (env SPECGEN_MANIFEST)")
	flag.Usage = Usage
	flag.Parse()
	if *showVersion {
		fmt.Printf("specgen %v\n", internal.Version)
		return
	}

	log := logger.New(*logLevel, *logFormat).Component("specgen")

	args := flag.Args()
	if len(args) == 0 {
		// Default: process whole package in current directory.
		args = []string{"."}
	}

	pkgs, err := internal.Load(args...)
	if err != nil {
		log.Fatal().Err(err).Msg("load packages")
	}

	report := &internal.Manifest{Version: internal.Version}
	failed := false
	for _, pkg := range pkgs {
		result, diagnostics := internal.Discover(pkg)
		report.Packages = append(report.Packages, result)
		report.Diagnostics = append(report.Diagnostics, diagnostics...)
		for _, d := range diagnostics {
			failed = true
			log.Error().Str("pos", d.Pos).Str("member", d.Member).Msg(d.Message)
		}

		files, err := internal.Generate(result, result.Entities)
		if err != nil {
			log.Fatal().Err(err).Str("package", result.Path).Msg("generate")
		}
		for _, f := range files {
			filename, err := f.Write(result.Dir)
			if err != nil {
				failed = true
				log.Error().Err(err).Str("package", result.Path).Str("entity", f.Entity).Msg("write")
				continue
			}
			log.Info().Str("package", result.Path).Str("entity", f.Entity).Msgf("wrote %s", filename)
		}
	}

	if *manifest != "" {
		if err := report.Write(*manifest); err != nil {
			log.Fatal().Err(err).Msg("write manifest")
		}
	}
	if failed {
		os.Exit(1)
	}
}
