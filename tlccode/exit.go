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

// Exit classifies the exit code the TLC child process terminates with.
// The outcome package's ProcessOutcome looks a child's raw exit code up
// against these values; they are distinct from the exit codes
// outcome.ConciseOutcome.ToExitCode produces.
type Exit int

const (
	ExitSuccess    Exit = 0
	ExitPlainError Exit = 255

	ExitViolationAssumption Exit = 10
	ExitViolationDeadlock   Exit = 11
	ExitViolationSafety     Exit = 12
	ExitViolationLiveness   Exit = 13
	ExitViolationAssert     Exit = 14

	ExitFailureSpecEval     Exit = 75
	ExitFailureSafetyEval   Exit = 76
	ExitFailureLivenessEval Exit = 77

	ExitErrorSpecParse          Exit = 150
	ExitErrorConfigParse        Exit = 151
	ExitErrorStatespaceTooLarge Exit = 152
	ExitErrorSystem             Exit = 153
)

// IsError is false exactly for Success and the two kinds of violation that
// represent a genuine (if unsafe) analysis result: safety and liveness
// violations are matla doing its job, not matla failing.
func (e Exit) IsError() bool {
	switch e {
	case ExitSuccess, ExitViolationSafety, ExitViolationLiveness:
		return false
	default:
		return true
	}
}

// IsViolation is true for a safety/liveness/deadlock/assumption/assert
// violation exit code — tlc concluded the model is unsafe, rather than
// failing to check it at all.
func (e Exit) IsViolation() bool {
	switch e {
	case ExitViolationAssumption, ExitViolationDeadlock, ExitViolationSafety,
		ExitViolationLiveness, ExitViolationAssert:
		return true
	default:
		return false
	}
}

// IsFailure is true for an evaluation-failure exit code.
func (e Exit) IsFailure() bool {
	switch e {
	case ExitFailureSpecEval, ExitFailureSafetyEval, ExitFailureLivenessEval:
		return true
	default:
		return false
	}
}

// IsErrorKind is true for an infrastructural-error exit code (spec parse,
// config parse, statespace too large, system).
func (e Exit) IsErrorKind() bool {
	switch e {
	case ExitErrorSpecParse, ExitErrorConfigParse, ExitErrorStatespaceTooLarge, ExitErrorSystem:
		return true
	default:
		return false
	}
}

var exitNames = map[Exit]string{
	ExitSuccess:                 "success",
	ExitPlainError:               "error",
	ExitViolationAssumption:      "[violation] assumption",
	ExitViolationDeadlock:        "[violation] deadlock",
	ExitViolationSafety:          "[violation] safety",
	ExitViolationLiveness:        "[violation] liveness",
	ExitViolationAssert:          "[violation] assert",
	ExitFailureSpecEval:          "[failure] spec eval",
	ExitFailureSafetyEval:        "[failure] safety eval",
	ExitFailureLivenessEval:      "[failure] liveness eval",
	ExitErrorSpecParse:           "[error] spec parse",
	ExitErrorConfigParse:         "[error] config parse",
	ExitErrorStatespaceTooLarge:  "[error] statespace too large",
	ExitErrorSystem:              "[error] system",
}

func (e Exit) String() string {
	if name, ok := exitNames[e]; ok {
		return name
	}
	return "[exit] unknown"
}
