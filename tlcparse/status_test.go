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

package tlcparse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlcparse"
)

func TestParseInitGenerated1(t *testing.T) {
	res, err := tlcparse.ParseInitGenerated1(
		"Finished computing initial states: 4 distinct states generated at 2024-01-02 03:04:05.")
	require.NoError(t, err)
	require.Equal(t, 4, res.StateCount)
	require.Equal(t, 2024, res.EndTime.Year())
}

func TestParseStats(t *testing.T) {
	res, err := tlcparse.ParseStats("120 states generated, 40 distinct states found, 3 states left on queue.")
	require.NoError(t, err)
	require.Equal(t, tlcparse.Stats{Generated: 120, Distinct: 40, Left: 3}, res)
}

func TestParseSearchDepth(t *testing.T) {
	res, err := tlcparse.ParseSearchDepth("The depth of the complete state graph search is 17.")
	require.NoError(t, err)
	require.Equal(t, 17, res.Depth)
}

func TestParseGraphOutdegree(t *testing.T) {
	res, err := tlcparse.ParseGraphOutdegree(
		"The average outdegree of the complete state graph is 3 (minimum is 1, the maximum 9 and the 95 th percentile is 6).")
	require.NoError(t, err)
	require.Equal(t, tlcparse.GraphOutdegree{Outdegree: 3, Min: 1, Max: 9, PercentileTh: 95, Percentile: 6}, res)
}

func TestParseProgressStats(t *testing.T) {
	res, err := tlcparse.ParseProgressStats(
		"Progress(5) at 2024-01-02 03:04:05: 100 states generated (20 s/min), 30 distinct states found (6 ds/min), 2 states left on queue.")
	require.NoError(t, err)
	require.Equal(t, 100, res.Generated)
	require.NotNil(t, res.GenSpm)
	require.Equal(t, 20, *res.GenSpm)
	require.Equal(t, 30, res.Distinct)
	require.NotNil(t, res.DistSpm)
	require.Equal(t, 2, res.Left)
}

func TestParseProgressStatsWithoutRates(t *testing.T) {
	res, err := tlcparse.ParseProgressStats(
		"Progress(5) at 2024-01-02 03:04:05: 100 states generated, 30 distinct states found, 2 states left on queue.")
	require.NoError(t, err)
	require.Nil(t, res.GenSpm)
	require.Nil(t, res.DistSpm)
}

func TestParseFinishedMillis(t *testing.T) {
	d, err := tlcparse.ParseFinished("Finished in 1500ms at (2024-01-02 03:04:05)")
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, d)
}

func TestParseInvariantViolatedBehavior(t *testing.T) {
	name, err := tlcparse.ParseInvariantViolatedBehavior("Invariant Safety is violated.")
	require.NoError(t, err)
	require.Equal(t, "Safety", name)
}

func TestParseAssertionFailure(t *testing.T) {
	err := tlcparse.ParseAssertionFailure1(
		"The first argument of Assert evaluated to FALSE; the second argument was :")
	require.NoError(t, err)

	msg, err := tlcparse.ParseAssertionFailure2(`"boom"`)
	require.NoError(t, err)
	require.Equal(t, "boom", *msg)
}

func TestParseBackToState(t *testing.T) {
	n, err := tlcparse.ParseBackToState("Back to state 3: foo")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = tlcparse.ParseBackToState("3: Back to state foo")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
