// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source reads the JSON documents that dictionary data is converted
// from.
//
// Source files may be plain JSON or compressed with gzip or dictzip, which is
// detected from a ".gz" or ".dz" file extension.
package source

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ianlewis/go-imedict/internal/folding"
	"github.com/ianlewis/go-imedict/internal/textfile"
)

var (
	// ErrMissingFile indicates that a source file does not exist.
	ErrMissingFile = errors.New("missing file")

	// ErrParse indicates that a source file is not valid JSON.
	ErrParse = errors.New("failed to parse JSON")
)

// JSON is the configuration used to read source documents.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Exists reports whether a source file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read reads and validates the JSON document at path. It returns nil data
// without an error when the file exists but is blank.
func Read(path string) ([]byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimFunc(raw, folding.IsSpace)) == 0 {
		return nil, nil
	}

	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("%w at %s: %s", ErrParse, path, err.Error())
	}
	return raw, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".dz":
		// dictzip files are valid gzip files.
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %s", ErrParse, path, err.Error())
		}
		defer z.Close()
		r = z
	}

	raw, err := io.ReadAll(textfile.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return raw, nil
}

// validate checks that raw holds exactly one JSON value.
func validate(raw []byte) error {
	iter := JSON.BorrowIterator(raw)
	defer JSON.ReturnIterator(iter)

	Skip(iter)
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		//nolint:wrapcheck // the error is wrapped by the caller.
		return iter.Error
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		iter.ReportError("validate", "there are bytes left after the JSON value")
		//nolint:wrapcheck // the error is wrapped by the caller.
		return iter.Error
	}
	return nil
}

// number matches the JSON number grammar.
var number = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Skip skips the next JSON value in iter. Unlike [jsoniter.Iterator.Skip] it
// accepts numbers outside the range of a float64, which are valid JSON.
func Skip(iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		if (iter.Error == nil || errors.Is(iter.Error, io.EOF)) && !number.MatchString(string(n)) {
			iter.ReportError("Skip", fmt.Sprintf("invalid number %q", n))
		}
	case jsoniter.ArrayValue:
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			Skip(iter)
			return iter.Error == nil || errors.Is(iter.Error, io.EOF)
		})
	case jsoniter.ObjectValue:
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, _ string) bool {
			Skip(iter)
			return iter.Error == nil || errors.Is(iter.Error, io.EOF)
		})
	default:
		iter.Skip()
	}
}
