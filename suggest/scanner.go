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

package suggest

import (
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-imedict/internal/textfile"
)

// Scanner scans a suggestions file from start to end. Comment lines and lines
// that are not valid records are skipped.
type Scanner struct {
	r io.ReadCloser
	s *textfile.Scanner
}

// NewScanner returns a new suggestions scanner. The Scanner assumes ownership of
// the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		r: r,
		s: textfile.NewScanner(r),
	}
}

// OpenScanner opens the suggestions file at path and returns a Scanner for it.
func OpenScanner(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening suggestions: %w", err)
	}
	return NewScanner(f), nil
}

// Scan advances the scanner to the next suggestion line. It returns false if
// the scan stops either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Line returns the most recent line read by Scan.
func (s *Scanner) Line() *Line {
	rec := s.s.Record()
	if rec == nil {
		return nil
	}
	return &Line{
		Key:        rec.Key,
		Suggestion: rec.Value,
	}
}

// Malformed returns the number of lines skipped because they were neither
// comments nor valid suggestion lines.
func (s *Scanner) Malformed() int {
	return s.s.Malformed()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("reading suggestions: %w", err)
	}
	return nil
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing suggestions: %w", err)
	}
	return nil
}
