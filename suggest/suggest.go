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
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ianlewis/go-imedict/internal/folding"
	"github.com/ianlewis/go-imedict/internal/source"
	"github.com/ianlewis/go-imedict/internal/textfile"
)

var (
	// ErrEmpty indicates that no suggestion lines were produced and the
	// suggestions file was left untouched.
	ErrEmpty = errors.New("no suggestions entries found")

	// ErrDecode indicates that the suggestions source could not be decoded.
	ErrDecode = errors.New("decoding suggestions data")
)

// List is the list of suggestions for a key.
type List struct {
	Key         string
	Suggestions []string
}

// Source is a decoded suggestions document.
type Source struct {
	// Lists holds one list per distinct key in the order keys first appear in
	// the document.
	Lists []*List

	// Skipped is the number of values that were not arrays.
	Skipped int
}

// Line is a single suggestions file line.
type Line struct {
	Key        string
	Suggestion string
}

// String returns the line as it appears in the suggestions file.
func (l *Line) String() string {
	return l.Key + textfile.Separator + l.Suggestion
}

// Decode decodes a suggestions document. A nil document, or a document that
// is not an object, has no lists. A key that appears more than once keeps the
// position of its first occurrence and the value of its last. Values that are
// not arrays decode as empty lists and elements that are not strings are
// dropped.
func Decode(data []byte) (*Source, error) {
	src := &Source{}
	if data == nil {
		return src, nil
	}

	iter := source.JSON.BorrowIterator(data)
	defer source.JSON.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return src, nil
	}

	pos := map[string]int{}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		l := &List{Key: key}
		if iter.WhatIsNext() == jsoniter.ArrayValue {
			iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				if iter.WhatIsNext() != jsoniter.StringValue {
					source.Skip(iter)
					return true
				}
				l.Suggestions = append(l.Suggestions, iter.ReadString())
				return true
			})
		} else {
			source.Skip(iter)
			src.Skipped++
		}

		if i, ok := pos[key]; ok {
			src.Lists[i] = l
			return true
		}
		pos[key] = len(src.Lists)
		src.Lists = append(src.Lists, l)
		return true
	})
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrDecode, iter.Error.Error())
	}

	return src, nil
}

type bucket struct {
	suggestions []string
	seen        map[string]struct{}
}

// Flatten returns one line per distinct suggestion of each key. Keys and
// suggestions are trimmed and empty values are dropped. Keys that are equal
// after trimming are merged at the position of the first one. Values
// containing a tab or line break cannot be represented in the suggestions file
// and are also dropped.
func Flatten(lists []*List) []*Line {
	var keys []string
	buckets := map[string]*bucket{}

	for _, l := range lists {
		key := folding.TrimSpace(l.Key)
		if !validField(key) {
			continue
		}
		for _, s := range l.Suggestions {
			sg := folding.TrimSpace(s)
			if !validField(sg) {
				continue
			}

			b, ok := buckets[key]
			if !ok {
				b = &bucket{seen: map[string]struct{}{}}
				buckets[key] = b
				keys = append(keys, key)
			}
			if _, ok := b.seen[sg]; ok {
				continue
			}
			b.seen[sg] = struct{}{}
			b.suggestions = append(b.suggestions, sg)
		}
	}

	var lines []*Line
	for _, key := range keys {
		for _, sg := range buckets[key].suggestions {
			lines = append(lines, &Line{
				Key:        key,
				Suggestion: sg,
			})
		}
	}
	return lines
}

func validField(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\t\r\n")
}

// Write writes the suggestion lines to path and returns the number of lines
// written. If there are no lines the file at path is not modified and an error
// wrapping ErrEmpty is returned.
func Write(path string, lines []*Line) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w; %s not updated to avoid wiping data", ErrEmpty, path)
	}

	records := make([]textfile.Record, 0, len(lines))
	for _, l := range lines {
		records = append(records, textfile.Record{
			Key:   l.Key,
			Value: l.Suggestion,
		})
	}
	if err := textfile.Write(path, nil, records); err != nil {
		return 0, fmt.Errorf("writing suggestions: %w", err)
	}
	return len(lines), nil
}
