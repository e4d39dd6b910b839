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
	"strings"

	"github.com/ianlewis/go-imedict/internal/folding"
	"github.com/ianlewis/go-imedict/internal/index"
)

// Suggestions is an in-memory suggestions table that supports lookup by key.
type Suggestions struct {
	index *index.Index[*Line]

	keys       int
	duplicates int
	malformed  int
}

func lineKey(l *Line) string {
	return l.Key
}

// Open reads the suggestions file at path into memory.
func Open(path string) (*Suggestions, error) {
	s, err := OpenScanner(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return Read(s)
}

// Read reads all lines from s into a new Suggestions table. Repeated lines
// are counted and dropped.
func Read(s *Scanner) (*Suggestions, error) {
	sg := &Suggestions{}

	var lines []*Line
	seen := map[Line]struct{}{}
	keys := map[string]struct{}{}
	for s.Scan() {
		l := s.Line()
		if _, ok := seen[*l]; ok {
			sg.duplicates++
			continue
		}
		seen[*l] = struct{}{}
		keys[l.Key] = struct{}{}
		lines = append(lines, l)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	sg.index = index.NewIndex(lines, lineKey, strings.Compare)
	sg.keys = len(keys)
	sg.malformed = s.Malformed()
	return sg, nil
}

// Lookup returns the suggestions for key in file order.
func (sg *Suggestions) Lookup(key string) []string {
	q, err := folding.FoldQuery(key)
	if err != nil || q == "" {
		return nil
	}

	var out []string
	for _, l := range sg.index.Search(q) {
		out = append(out, l.Suggestion)
	}
	return out
}

// Len returns the number of distinct lines.
func (sg *Suggestions) Len() int {
	return sg.index.Len()
}

// Keys returns the number of distinct keys.
func (sg *Suggestions) Keys() int {
	return sg.keys
}

// Duplicates returns the number of repeated lines found while reading.
func (sg *Suggestions) Duplicates() int {
	return sg.duplicates
}

// Malformed returns the number of lines that were neither comments nor valid
// suggestion lines.
func (sg *Suggestions) Malformed() int {
	return sg.malformed
}
