// Copyright 2020-2023 Buf Technologies, Inc.
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

package diag

import "sync"

// Handler collects diagnostics as the runtime state machine reports them,
// separating warnings from errors and preventing the same diagnostic from
// being surfaced twice (spec §7: "duplicate surfacing prevented via a
// reported flag").
//
// Adapted from reporter.Handler, which serializes a single abort-on-first
// ErrorWithPos into one terminal error; a TLC run instead accumulates every
// diagnostic it sees over its lifetime; so Handle never aborts and Errors
// returns everything collected so far.
type Handler struct {
	mu       sync.Mutex
	seen     map[string]bool
	errs     []TlcError
	warnings []TlcError
}

// NewHandler builds an empty Handler.
func NewHandler() *Handler {
	return &Handler{seen: make(map[string]bool)}
}

// Handle records err, routing it to Errors or Warnings depending on
// IsWarning. A diagnostic whose Error() text has already been recorded is
// dropped silently.
func (h *Handler) Handle(err TlcError) {
	h.mu.Lock()
	defer h.mu.Unlock()

	text := err.Error()
	if h.seen[text] {
		return
	}
	h.seen[text] = true

	if err.IsWarning() {
		h.warnings = append(h.warnings, err)
	} else {
		h.errs = append(h.errs, err)
	}
}

// Errors returns every non-warning diagnostic recorded so far.
func (h *Handler) Errors() []TlcError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]TlcError(nil), h.errs...)
}

// Warnings returns every warning recorded so far.
func (h *Handler) Warnings() []TlcError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]TlcError(nil), h.warnings...)
}

// HasErrors reports whether any non-warning diagnostic has been recorded.
func (h *Handler) HasErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errs) > 0
}

// AsList bundles everything recorded so far (errors then warnings) into a
// single List, or returns nil if nothing has been recorded.
func (h *Handler) AsList(during *string) *List {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.errs) == 0 && len(h.warnings) == 0 {
		return nil
	}
	all := make([]TlcError, 0, len(h.errs)+len(h.warnings))
	all = append(all, h.errs...)
	all = append(all, h.warnings...)
	return &List{During: during, Errs: all}
}
