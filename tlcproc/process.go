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

// Package tlcproc owns the TLC child process itself: launching it,
// fanning its stdout/stderr into a single ordered stream of lines, and the
// external interfaces (spec §6) the runtime state machine is driven
// through — the output sink and the module resolver.
//
// Grounded on base/src/thread.rs's ChildCmd/ChildCmdCom: that type spawns
// one goroutine (there, an OS thread) per stream plus a control loop that
// waits on the child and forwards a Done/Fail sentinel. Go's os/exec makes
// the control loop unnecessary — cmd.Wait does that job — so this keeps
// exactly the ChildCmd shape spec §5 asks for ("three ancillary worker
// threads... fan in the child's stdout and stderr into a channel") with one
// goroutine per stream and a third that joins the process once both
// streams are drained.
package tlcproc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ocamlpro/matla/tlcmsg"
)

// Options configures how the child is launched. This is the narrow seam a
// configuration layer plugs into (SPEC_FULL §10.3); it parses no config
// file format itself.
type Options struct {
	// Dir is the working directory TLC is launched from.
	Dir string
	// Args are extra CLI arguments appended after the machine-readable and
	// metadir flags this package always passes.
	Args []string
	// MetaDir is the directory TLC writes its metadata into.
	MetaDir string
}

// Process wraps a running TLC child process, exposing its combined
// stdout/stderr as an ordered stream of tlcmsg.Line values.
type Process struct {
	cmd    *exec.Cmd
	lines  chan tlcmsg.Line
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	streamErr error
	waitErr   error
}

// Start launches name with opts and begins streaming its output. The
// returned Process is ready for repeated calls to Next.
func Start(ctx context.Context, name string, opts Options) (*Process, error) {
	ctx, cancel := context.WithCancel(ctx)

	args := append([]string{"-tool", "-metadir", opts.MetaDir}, opts.Args...)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("tlcproc: cannot access stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("tlcproc: cannot access stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("tlcproc: failed to start command %q: %w", name, err)
	}

	p := &Process{
		cmd:    cmd,
		lines:  make(chan tlcmsg.Line),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	var g errgroup.Group
	g.Go(func() error { return scanStream(stdout, false, p.lines) })
	g.Go(func() error { return scanStream(stderr, true, p.lines) })

	go func() {
		streamErr := g.Wait()
		close(p.lines)
		waitErr := cmd.Wait()

		p.mu.Lock()
		p.streamErr = streamErr
		p.waitErr = waitErr
		p.mu.Unlock()
		close(p.done)
	}()

	return p, nil
}

// scanStream reads r line by line, sending each onto out tagged with
// fromStderr, until EOF or the reader errors (e.g. the pipe closing
// because Destroy killed the child).
func scanStream(r io.Reader, fromStderr bool, out chan<- tlcmsg.Line) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		out <- tlcmsg.Line{Text: sc.Text(), FromStderr: fromStderr}
	}
	return sc.Err()
}

// Next blocks for the next line of output. ok is false once both streams
// have reached end-of-stream; the caller must not call Next again after
// that.
func (p *Process) Next() (line tlcmsg.Line, ok bool) {
	line, ok = <-p.lines
	return line, ok
}

// Destroy sends a kill order to the child (spec §4.4 Cancellation). It is
// safe to call more than once and safe to call before end-of-stream; the
// worker goroutines notice the pipes closing and terminate on their own.
func (p *Process) Destroy() {
	p.cancel()
}

// Join waits for both worker streams and the child process to finish,
// returning the first error encountered reading a stream, or else the
// error from the child's own exit. Join is only legal after Next has
// returned ok=false (spec §4.4: "join is legal only when next has returned
// end-of-stream").
func (p *Process) Join() error {
	<-p.done
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamErr != nil {
		return fmt.Errorf("tlcproc: reading child output: %w", p.streamErr)
	}
	return p.waitErr
}

// ExitCode returns the child's raw process exit code. Valid only after
// Join has returned; -1 if the process never produced one (e.g. it was
// killed by a signal).
func (p *Process) ExitCode() int {
	if p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}
