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

// Package imedict converts the JSON stroke and suggestion data produced by
// the dictionary tooling into the tab-delimited text files read by the IME.
//
// A conversion reads two independent source documents and writes two text
// files:
//  1. The stroke data, a JSON array of characters and their stroke code
//     sequences, is written as the dictionary file. See package strokes.
//  2. The suggestions data, a JSON object mapping keys to suggested words, is
//     written as the suggestions file. See package suggest.
//
// Output files are only replaced when the conversion produces at least one
// line, so an empty or broken source never wipes existing data.
package imedict
