/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command splituri splits http and https endpoints into their components
// and prints each one as a JSON document.
//
// Usage:
//
//	splituri [flags] [endpoint ...]
//
// With no endpoint arguments, endpoints are read from standard input, one
// per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jplu/splituri/internal/config"
	"github.com/jplu/splituri/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	normalize := flag.Bool("normalize", false, "normalize endpoints to NFC before splitting")
	strict := flag.Bool("strict", false, "exit with status 1 if an endpoint cannot be split")
	wide := flag.Bool("wide", false, "split through the UTF-16 code path")
	version := flag.Bool("v", false, "print version and exit")
	flag.BoolVar(version, "version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("splituri %s (commit %s, built %s)\n", config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pretty":
			cfg.Pretty = *pretty
		case "normalize":
			cfg.Normalize = *normalize
		case "strict":
			cfg.Strict = *strict
		}
	})

	log, err := logging.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	opts := options{
		pretty:    cfg.Pretty,
		normalize: cfg.Normalize,
		wide:      *wide,
	}
	unsupported, err := run(flag.Args(), os.Stdin, os.Stdout, opts, log.Named("splituri"))
	if err != nil {
		log.Error("splitting failed", zap.Error(err))
		os.Exit(1)
	}
	if cfg.Strict && unsupported > 0 {
		log.Error("some endpoints could not be split", zap.Int("count", unsupported))
		os.Exit(1)
	}
}
