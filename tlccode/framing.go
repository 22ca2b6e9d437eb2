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

package tlccode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// startRegex/endRegex match the sentinel lines TLC wraps every message in.
// The leading `[:]?\s*` on startRegex tolerates a stray leading colon TLC
// sometimes emits (see tlaplus/tlaplus#732); drop it if that's ever fixed
// upstream.
var (
	startRegex = regexp.MustCompile(`^[:]?\s*@!@!@STARTMSG\s+(-?\d+):(\d+)\s+@!@!@$`)
	endRegex   = regexp.MustCompile(`^@!@!@ENDMSG\s+(-?\d+)\s+@!@!@$`)
)

// ParseStart recognizes a STARTMSG sentinel line, returning the message's
// code and trailer id. It also recognizes the one pseudo-message that isn't
// really framed at all: the "no Java runtime" diagnostic the JVM launcher
// prints instead of starting TLC.
func ParseStart(line string) (code Code, trail int, ok bool, err error) {
	if strings.Contains(line, "Unable to locate a Java Runtime") {
		return ErrNoJavaRuntime, 0, true, nil
	}

	m := startRegex.FindStringSubmatch(line)
	if m == nil {
		return Code{}, 0, false, nil
	}

	codeVal, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return Code{}, 0, false, fmt.Errorf("failed to parse code %q: %w", m[1], convErr)
	}
	trailVal, convErr := strconv.Atoi(m[2])
	if convErr != nil {
		return Code{}, 0, false, fmt.Errorf("failed to parse trailer %q: %w", m[2], convErr)
	}
	return NewCode(codeVal), trailVal, true, nil
}

// ParseEnd recognizes an ENDMSG sentinel line, returning the message's code.
func ParseEnd(line string) (code Code, ok bool, err error) {
	if strings.Contains(line, "on installing Java") {
		return ErrNoJavaRuntime, true, nil
	}

	m := endRegex.FindStringSubmatch(line)
	if m == nil {
		return Code{}, false, nil
	}

	codeVal, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return Code{}, false, fmt.Errorf("failed to parse code %q: %w", m[1], convErr)
	}
	return NewCode(codeVal), true, nil
}
