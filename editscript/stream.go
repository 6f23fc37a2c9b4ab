//
// Copyright (c) 2025 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editscript

// Stream is a single-pass, cooperative generator of edits: one call
// returns the next edit and true, or (nil, false) once exhausted. Streams
// are not restartable and must not be cloned — the explicit state-machine
// realization of lazy evaluation called for by the search engine.
type Stream func() (Edit, bool)

// emptyStream never yields anything.
func emptyStream() Stream {
	return func() (Edit, bool) { return nil, false }
}

// onceStream yields e exactly once.
func onceStream(e Edit) Stream {
	done := false
	return func() (Edit, bool) {
		if done {
			return nil, false
		}
		done = true
		return e, true
	}
}

// sliceStream yields each of edits in order.
func sliceStream(edits []Edit) Stream {
	i := 0
	return func() (Edit, bool) {
		if i >= len(edits) {
			return nil, false
		}
		e := edits[i]
		i++
		return e, true
	}
}

// pairStream yields a then b.
func pairStream(a, b Edit) Stream {
	return sliceStream([]Edit{a, b})
}

// tripleStream yields a, b, then c.
func tripleStream(a, b, c Edit) Stream {
	return sliceStream([]Edit{a, b, c})
}

// concatStream chains several streams end to end, like itertools.chain.
func concatStream(streams ...Stream) Stream {
	i := 0
	return func() (Edit, bool) {
		for i < len(streams) {
			e, ok := streams[i]()
			if ok {
				return e, true
			}
			i++
		}
		return nil, false
	}
}

// drain pulls every remaining item out of s, in order.
func drain(s Stream) []Edit {
	var out []Edit
	for {
		e, ok := s()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
