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

// Package suggest converts suggestion data into the IME suggestions text
// format and reads it back.
//
// The source is a JSON object mapping a trigger key to a list of suggested
// words:
//
//	{"妈": ["妈妈", "妈咪"]}
//
// The suggestions file has one key and suggestion pair per line, separated by
// a tab, with keys in source order and suggestions in the order first seen for
// their key:
//
//	妈	妈妈
//	妈	妈咪
package suggest
