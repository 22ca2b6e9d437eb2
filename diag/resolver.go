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

import "fmt"

// ModuleResolver returns the source content of the named module.
// Spec §6: "a function (module_name, &mut string) -> Result; used by the
// renderer." Go has no out-parameter convention as clean as a mutable
// string reference, so this returns the content directly instead of
// appending into a caller-owned buffer.
type ModuleResolver func(module string) (string, error)

// loadModule resolves a module's content, wrapping failures with the
// module name for context.
func loadModule(resolve ModuleResolver, module string) (string, error) {
	content, err := resolve(module)
	if err != nil {
		return "", fmt.Errorf("loading module %q: %w", module, err)
	}
	return content, nil
}
