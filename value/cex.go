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

package value

import (
	"fmt"

	"github.com/ocamlpro/matla/pos"
)

// StateInfo describes the action that produced a non-initial state: its
// name, the span of the action in source, and the module it came from.
// Absent (nil StateInfo) exactly for initial states (spec §3).
type StateInfo struct {
	Action string
	Span   [2]pos.Pos
	Module string
}

// State is one step of a counter-example: optional provenance info, plus
// the bindings of every state variable to its value at this step.
type State struct {
	Info   *StateInfo
	Values *OrderedMap
}

// NewState builds an empty State. info is nil for an initial state.
func NewState(info *StateInfo) State {
	return State{Info: info, Values: NewOrderedMap()}
}

// Shape describes how a counter-example trace ends.
type Shape struct {
	kind shapeKind
	loop int
}

type shapeKind int

const (
	ShapeFinite shapeKind = iota
	ShapeStuttering
	ShapeLoop
)

// Finite is the shape of a safety (invariant) counter-example: it simply
// ends.
func Finite() Shape { return Shape{kind: ShapeFinite} }

// Stuttering is the shape of a liveness counter-example whose last state
// repeats forever.
func Stuttering() Shape { return Shape{kind: ShapeStuttering} }

// Loop is the shape of a liveness counter-example that loops back to the
// state at the given index. Spec §3 invariant: index < len(states),
// enforced by Cex.SetShape.
func Loop(index int) Shape { return Shape{kind: ShapeLoop, loop: index} }

func (s Shape) Kind() shapeKind { return s.kind }
func (s Shape) IsFinite() bool  { return s.kind == ShapeFinite }
func (s Shape) IsStuttering() bool { return s.kind == ShapeStuttering }
func (s Shape) LoopIndex() (int, bool) {
	if s.kind != ShapeLoop {
		return 0, false
	}
	return s.loop, true
}

// Cex is a counter-example: the optional name of the falsified
// invariant/property, the sequence of states, and the trace's shape.
type Cex struct {
	Falsified *string
	States    []State
	Shape     Shape
}

// NewCex builds an empty counter-example with the default Finite shape.
func NewCex() *Cex {
	return &Cex{Shape: Finite()}
}

// FalsifiedName and whether the trace is for a temporal (liveness) property,
// deduced from the shape not being Finite.
func (c *Cex) FalsifiedName() (name string, isTemporal bool) {
	if c.Falsified != nil {
		name = *c.Falsified
	}
	return name, c.Shape.kind != ShapeFinite
}

// SetFalsified records the name of the falsified invariant/property. Spec
// §3: "falsified may be set at most once."
func (c *Cex) SetFalsified(name string) error {
	if c.Falsified != nil {
		return fmt.Errorf("tried to set falsified twice (%q, %q)", *c.Falsified, name)
	}
	c.Falsified = &name
	return nil
}

// AppendState appends a state to the trace, verifying its declared index
// equals the trace's current length (spec §4.7).
func (c *Cex) AppendState(declaredIndex int, s State) error {
	if declaredIndex != len(c.States) {
		return fmt.Errorf("state index mismatch: message declares index %d but trace has %d state(s)", declaredIndex, len(c.States))
	}
	if declaredIndex == 0 && s.Info != nil {
		return fmt.Errorf("initial state (index 0) must not carry state info")
	}
	if declaredIndex != 0 && s.Info == nil {
		return fmt.Errorf("non-initial state at index %d must carry state info", declaredIndex)
	}
	c.States = append(c.States, s)
	return nil
}

// SetShape sets the trace's shape, validating the Loop invariant (spec §3:
// "Loop(i) requires i < states.len()").
func (c *Cex) SetShape(s Shape) error {
	if idx, ok := s.LoopIndex(); ok && idx >= len(c.States) {
		return fmt.Errorf("illegal loop-back index %d, trace only has %d state(s)", idx, len(c.States))
	}
	c.Shape = s
	return nil
}
