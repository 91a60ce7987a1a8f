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

package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/jplu/splituri/uri"
)

type options struct {
	pretty    bool
	normalize bool
	wide      bool
}

// run splits every endpoint in args, or every non-blank line of in when args
// is empty, and writes one JSON document per endpoint to out. It returns the
// number of endpoints whose scheme could not be decomposed.
func run(args []string, in io.Reader, out io.Writer, opts options, log *zap.Logger) (int, error) {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}

	var unsupported int
	emit := func(endpoint string) error {
		doc, ok, err := split(endpoint, opts)
		if err != nil {
			return errors.Wrapf(err, "split %q", endpoint)
		}
		if !ok {
			unsupported++
			log.Warn("unsupported scheme", zap.String("endpoint", endpoint))
		}
		return errors.Wrap(enc.Encode(doc), "write output")
	}

	if len(args) > 0 {
		for _, endpoint := range args {
			if err := emit(endpoint); err != nil {
				return unsupported, err
			}
		}
		return unsupported, nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		endpoint := strings.TrimSpace(scanner.Text())
		if endpoint == "" {
			continue
		}
		if err := emit(endpoint); err != nil {
			return unsupported, err
		}
	}
	return unsupported, errors.Wrap(scanner.Err(), "read input")
}

// split parses one endpoint and returns the value to encode and whether its
// scheme was decomposable.
func split(endpoint string, opts options) (any, bool, error) {
	if opts.normalize {
		endpoint = norm.NFC.String(endpoint)
	}
	if !opts.wide {
		u := uri.Parse(endpoint)
		return u, u.Scheme != uri.Unknown, nil
	}
	units, err := uri.EncodeUTF16(endpoint)
	if err != nil {
		return nil, false, err
	}
	w := uri.ParseWide(units)
	return w, w.Scheme != uri.Unknown, nil
}
