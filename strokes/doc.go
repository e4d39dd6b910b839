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

// Package strokes converts stroke code data into the IME dictionary text
// format and reads it back.
//
// The source is a JSON array of entries, each mapping a character to the
// stroke code sequences that produce it:
//
//	[{"character": "十", "strokeSequences": ["一丨"]}]
//
// The dictionary is a text file with a fixed comment header followed by one
// code and character pair per line, separated by a tab:
//
//	一丨	十
//
// Codes appear in the order they are first introduced by the source entries
// and the characters for a code appear in the order they are first seen. A
// code and character pair is never repeated.
package strokes
