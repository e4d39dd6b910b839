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

package strokes

import (
	"strings"

	"github.com/ianlewis/go-imedict/internal/folding"
	"github.com/ianlewis/go-imedict/internal/index"
)

// Dictionary is an in-memory dictionary that supports lookup by code.
type Dictionary struct {
	index *index.Index[*Line]

	codes      int
	duplicates int
	malformed  int
}

func lineCode(l *Line) string {
	return l.Code
}

// Open reads the dictionary file at path into memory.
func Open(path string) (*Dictionary, error) {
	s, err := OpenScanner(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return Read(s)
}

// Read reads all lines from s into a new Dictionary.
func Read(s *Scanner) (*Dictionary, error) {
	d := &Dictionary{}

	var lines []*Line
	seen := map[Line]struct{}{}
	codes := map[string]struct{}{}
	for s.Scan() {
		l := s.Line()
		if _, ok := seen[*l]; ok {
			d.duplicates++
			continue
		}
		seen[*l] = struct{}{}
		codes[l.Code] = struct{}{}
		lines = append(lines, l)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	d.index = index.NewIndex(lines, lineCode, strings.Compare)
	d.codes = len(codes)
	d.malformed = s.Malformed()
	return d, nil
}

// Lookup returns the characters for code in dictionary order. Whitespace in
// the code is folded before searching.
func (d *Dictionary) Lookup(code string) []string {
	q, err := folding.FoldQuery(code)
	if err != nil || q == "" {
		return nil
	}

	var chars []string
	for _, l := range d.index.Search(q) {
		chars = append(chars, l.Character)
	}
	return chars
}

// Len returns the number of distinct lines in the dictionary.
func (d *Dictionary) Len() int {
	return d.index.Len()
}

// Codes returns the number of distinct codes in the dictionary.
func (d *Dictionary) Codes() int {
	return d.codes
}

// Duplicates returns the number of repeated lines found while reading.
func (d *Dictionary) Duplicates() int {
	return d.duplicates
}

// Malformed returns the number of lines that were neither comments nor valid
// dictionary lines.
func (d *Dictionary) Malformed() int {
	return d.malformed
}
