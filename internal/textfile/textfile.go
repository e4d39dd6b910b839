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

// Package textfile implements the line-oriented, tab-delimited text format read
// by the IME engine.
//
// Each record is a single line made of a key and a value separated by the
// first tab character. Files are UTF-8 encoded, may start with a byte order
// mark and may use either LF or CRLF line endings. Empty lines and lines
// starting with '#' or ';' are comments.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator separates the key and value of a record.
const Separator = "\t"

// maxLineSize is the longest line the Scanner accepts.
const maxLineSize = 1024 * 1024

// ErrLineTooLong indicates a line longer than the Scanner can buffer.
var ErrLineTooLong = errors.New("line too long")

// NewReader returns a reader that decodes UTF-8 from r and drops a leading
// byte order mark.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Record is a single key/value line.
type Record struct {
	// Line is the 1-based line number in the file.
	Line int

	Key   string
	Value string
}

// Scanner reads records from a text file, skipping comments and lines that
// are not valid records.
type Scanner struct {
	s    *bufio.Scanner
	rec  *Record
	line int

	// malformed counts non-comment lines that were skipped.
	malformed int
}

// NewScanner returns a new Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(NewReader(r))
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Scanner{s: s}
}

// Scan advances to the next record. It returns false when the end of the input
// is reached or an error occurs.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		// bufio.ScanLines drops the CR of a CRLF ending but not a second CR,
		// as in "\r\r\n".
		line := strings.TrimSuffix(s.s.Text(), "\r")
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		key, value, found := strings.Cut(line, Separator)
		if !found || key == "" || value == "" {
			s.malformed++
			continue
		}
		s.rec = &Record{
			Line:  s.line,
			Key:   key,
			Value: value,
		}
		return true
	}
	s.rec = nil
	return false
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Malformed returns the number of lines skipped because they were not comments
// and not valid records.
func (s *Scanner) Malformed() int {
	return s.malformed
}

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error {
	err := s.s.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: line %d", ErrLineTooLong, s.line+1)
	}
	//nolint:wrapcheck // error should not be wrapped
	return err
}

// Write writes the header lines followed by the records to path, joined by
// newlines without a trailing newline. Any existing file is overwritten and
// missing parent directories are created.
func Write(path string, header []string, records []Record) error {
	var b strings.Builder
	for _, h := range header {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Key)
		b.WriteString(Separator)
		b.WriteString(r.Value)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}
	//nolint:gosec // output files are world readable.
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
