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

package tlcrun

import (
	"fmt"
	"strings"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcparse"
	"github.com/ocamlpro/matla/tlcproc"
)

// topCfgModule stands in for Parsing's ModuleOrTop::TopCfg: TLC is
// currently parsing the `.cfg` file, which has no module name of its own.
const topCfgModule = "<cfg>"

// Parsing tracks SANY's progress through a spec's modules, accumulating
// the text of any parse/semantic/lexical error report it prints along the
// way so it can be handed to the sink as one diagnostic once the report is
// complete. Grounded on runtime/parsing.rs.
type Parsing struct {
	currentModule string
	errorMsg      *string
}

func newParsing() *Parsing { return &Parsing{} }

func (*Parsing) Desc() string { return "parsing" }

// tryReportError hands the accumulated error report, if any, to the sink,
// and returns the diagnostic it built so callers can carry it forward
// instead of re-deriving it later from the raw coded message.
func (p *Parsing) tryReportError(ctx Ctx) (bool, diag.TlcError, error) {
	if p.errorMsg == nil {
		return false, nil, nil
	}
	module := p.currentModule
	if module == "" {
		module = topModule
	}
	tlcErr := buildParseError(module, *p.errorMsg)
	if err := ctx.Out.HandleError(tlcErr); err != nil {
		return false, nil, err
	}
	return true, tlcErr, nil
}

func (p *Parsing) HandlePlain(ctx Ctx, msg *tlcmsg.Msg) (Control, error) {
	lines := msg.Lines()
	if msg.Subs.Len() != 1 || len(lines) != 1 {
		ctx.Out.HandleMessage(msg.String(), tlcproc.LogInfo)
		return Control{}, fmt.Errorf("expected exactly one plain message, got %d", msg.Subs.Len())
	}
	line := lines[0]

	if p.errorMsg == nil && line == "Semantic errors:" {
		empty := ""
		p.errorMsg = &empty
	}

	if p.errorMsg == nil {
		if err := updateParsing(line, p); err != nil {
			return Control{}, fmt.Errorf("while parsing plain message %q: %w", line, err)
		}
	} else {
		if *p.errorMsg != "" {
			*p.errorMsg += "\n"
		}
		*p.errorMsg += line
	}

	return Keep(p), nil
}

func (p *Parsing) HandleError(ctx Ctx, msg *tlcmsg.Msg, _ bool) (Control, error) {
	reported, built, err := p.tryReportError(ctx)
	if err != nil {
		return Control{}, err
	}
	if reported {
		return KeepAnd(p, newErrorModeFromDiag(built, true)), nil
	}
	return KeepAnd(p, newErrorMode(msg, false)), nil
}

func (p *Parsing) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcSanyEnd.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Keep(p), nil
	case tlccode.StatusTlcStarting.Int():
		ctx.report(tlcproc.LogDebug, msg)
		reported, built, err := p.tryReportError(ctx)
		if err != nil {
			return Control{}, err
		}
		if !reported {
			return Replace(newStarting()), nil
		}
		return Replace(newErrorModeFromDiag(built, true)), nil
	default:
		return Ignored(p), nil
	}
}

// updateParsing recognizes the handful of plain-text forms SANY prints
// while parsing: which file it's working on, or the start of a
// parse/semantic/lexical error report. Grounded on parse.rs's `parsing`
// rule.
func updateParsing(line string, p *Parsing) error {
	if kind, module, err := tlcparse.ParseParsingFile(line); err == nil {
		if kind == tlcparse.ParsingConfig {
			p.currentModule = topCfgModule
		} else {
			p.currentModule = module
		}
		return nil
	}
	if module, err := tlcparse.ParseProcessingFile(line); err == nil {
		p.currentModule = module
		return nil
	}
	if strings.TrimSpace(line) == "*** Parse Error ***" {
		empty := ""
		p.errorMsg = &empty
		return nil
	}
	if strings.HasPrefix(line, "Lexical error") {
		text := line
		p.errorMsg = &text
		return nil
	}
	if module, ok := matchFatalErrorsWhileParsing(line); ok {
		p.currentModule = module
		empty := ""
		p.errorMsg = &empty
		return nil
	}
	return fmt.Errorf("unrecognized line in parsing mode")
}
