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
	// ErrEmpty indicates that no dictionary lines were produced and the
	// dictionary file was left untouched.
	ErrEmpty = errors.New("no stroke dictionary entries found")

	// ErrDecode indicates that the stroke source could not be decoded.
	ErrDecode = errors.New("decoding stroke data")
)

// Header is written at the start of every dictionary file.
var Header = []string{
	"# Chinese IME Dictionary",
	"# Format: code<TAB>character",
	"# Lines starting with # or ; are comments",
	"# File must be UTF-8 encoded",
	"",
}

// Entry is a character and the stroke code sequences that produce it.
type Entry struct {
	Character       string
	StrokeSequences []string
}

// Source is a decoded stroke data document.
type Source struct {
	// Entries are the well formed entries in document order.
	Entries []*Entry

	// Skipped is the number of array elements that were not well formed
	// entries.
	Skipped int
}

// Line is a single dictionary line.
type Line struct {
	Code      string
	Character string
}

// String returns the line as it appears in the dictionary file.
func (l *Line) String() string {
	return l.Code + textfile.Separator + l.Character
}

// Decode decodes a stroke data document. A nil document, or a document that
// is not an array, has no entries. Elements that are not objects with a string
// "character" and an array "strokeSequences" are skipped, as are codes that
// are not strings.
func Decode(data []byte) (*Source, error) {
	src := &Source{}
	if data == nil {
		return src, nil
	}

	iter := source.JSON.BorrowIterator(data)
	defer source.JSON.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ArrayValue {
		return src, nil
	}
	iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
		if e := decodeEntry(iter); e != nil {
			src.Entries = append(src.Entries, e)
		} else {
			src.Skipped++
		}
		return true
	})
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrDecode, iter.Error.Error())
	}

	return src, nil
}

func decodeEntry(iter *jsoniter.Iterator) *Entry {
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		source.Skip(iter)
		return nil
	}

	var e Entry
	var hasCharacter, hasSequences bool
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		// Later duplicate fields replace earlier ones.
		switch field {
		case "character":
			hasCharacter = iter.WhatIsNext() == jsoniter.StringValue
			e.Character = ""
			if !hasCharacter {
				source.Skip(iter)
				return true
			}
			e.Character = iter.ReadString()
		case "strokeSequences":
			hasSequences = iter.WhatIsNext() == jsoniter.ArrayValue
			e.StrokeSequences = nil
			if !hasSequences {
				source.Skip(iter)
				return true
			}
			iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				if iter.WhatIsNext() != jsoniter.StringValue {
					source.Skip(iter)
					return true
				}
				e.StrokeSequences = append(e.StrokeSequences, iter.ReadString())
				return true
			})
		default:
			source.Skip(iter)
		}
		return true
	})

	if !hasCharacter || !hasSequences {
		return nil
	}
	return &e
}

type bucket struct {
	characters []string
	seen       map[string]struct{}
}

// Flatten returns the dictionary lines for entries. Characters and codes are
// trimmed and empty values are dropped. Values containing a tab or line break
// cannot be represented in the dictionary and are also dropped.
func Flatten(entries []*Entry) []*Line {
	var codes []string
	buckets := map[string]*bucket{}

	for _, e := range entries {
		ch := folding.TrimSpace(e.Character)
		if !validField(ch) {
			continue
		}
		for _, seq := range e.StrokeSequences {
			code := folding.TrimSpace(seq)
			if !validField(code) {
				continue
			}

			b, ok := buckets[code]
			if !ok {
				b = &bucket{seen: map[string]struct{}{}}
				buckets[code] = b
				codes = append(codes, code)
			}
			if _, ok := b.seen[ch]; ok {
				continue
			}
			b.seen[ch] = struct{}{}
			b.characters = append(b.characters, ch)
		}
	}

	var lines []*Line
	for _, code := range codes {
		for _, ch := range buckets[code].characters {
			lines = append(lines, &Line{
				Code:      code,
				Character: ch,
			})
		}
	}
	return lines
}

func validField(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\t\r\n")
}

// Write writes the dictionary lines to path and returns the number of lines
// written. If there are no lines the file at path is not modified and an error
// wrapping ErrEmpty is returned.
func Write(path string, lines []*Line) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w; %s not updated to avoid wiping data", ErrEmpty, path)
	}

	records := make([]textfile.Record, 0, len(lines))
	for _, l := range lines {
		records = append(records, textfile.Record{
			Key:   l.Code,
			Value: l.Character,
		})
	}
	if err := textfile.Write(path, Header, records); err != nil {
		return 0, fmt.Errorf("writing dictionary: %w", err)
	}
	return len(lines), nil
}
