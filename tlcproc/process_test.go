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

package tlcproc_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
)

// script writes body into an executable shell script and returns its path.
// Start always passes -tool and -metadir ahead of Args; a script ignores
// its arguments, so those flags never reach a shell's own option parser.
func script(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "child.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestProcessStreamsStdoutAndStderr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := tlcproc.Start(ctx, script(t, "echo out-line; echo err-line 1>&2"), tlcproc.Options{})
	require.NoError(t, err)

	var got []tlcmsg.Line
	for {
		line, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, line)
	}
	require.NoError(t, p.Join())
	require.Equal(t, 0, p.ExitCode())

	var sawOut, sawErr bool
	for _, l := range got {
		if l.Text == "out-line" && !l.FromStderr {
			sawOut = true
		}
		if l.Text == "err-line" && l.FromStderr {
			sawErr = true
		}
	}
	require.True(t, sawOut)
	require.True(t, sawErr)
}

func TestProcessExitCodeNonZero(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := tlcproc.Start(ctx, script(t, "exit 7"), tlcproc.Options{})
	require.NoError(t, err)
	for {
		if _, ok := p.Next(); !ok {
			break
		}
	}
	require.Error(t, p.Join())
	require.Equal(t, 7, p.ExitCode())
}

func TestProcessDestroyKillsChild(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := tlcproc.Start(ctx, script(t, "exec sleep 30"), tlcproc.Options{})
	require.NoError(t, err)

	p.Destroy()
	for {
		if _, ok := p.Next(); !ok {
			break
		}
	}
	// Join must return promptly once end-of-stream has been observed.
	done := make(chan struct{})
	go func() {
		p.Join()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Join did not return after Destroy")
	}
}
