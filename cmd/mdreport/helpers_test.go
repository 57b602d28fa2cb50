package main

// Notes:
// - Test helpers and mocks shared by the CLI tests. The mock pool never
//   launches a browser, so every CLI path runs without Chrome.

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	mdreport "github.com/alnah/go-mdreport"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter records every input and returns fixed bytes.
type mockConverter struct {
	mu     sync.Mutex
	inputs []mdreport.Input
	pdf    []byte
	html   []byte
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input mdreport.Input) (*mdreport.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	result := &mdreport.ConvertResult{
		Blocks: mdreport.ToBlocks(input.Markdown),
		HTML:   m.html,
	}
	if !input.HTMLOnly {
		result.PDF = m.pdf
	}
	return result, nil
}

func (m *mockConverter) calls() []mdreport.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdreport.Input(nil), m.inputs...)
}

// mockPool hands out one shared mockConverter.
type mockPool struct {
	conv       *mockConverter
	size       int
	acquireErr error
	closeErr   error

	mu       sync.Mutex
	acquired int
	released int
	closed   bool
	opts     int
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.closeErr
}

// newMockPool returns a pool of the given size backed by conv.
func newMockPool(size int, conv *mockConverter) *mockPool {
	return &mockPool{conv: conv, size: size}
}

// ---------------------------------------------------------------------------
// Environment helpers
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	pool     *mockPool
	poolSize int
}

// newTestEnv returns an Environment that captures output and serves the
// given converter through a mock pool.
func newTestEnv(t *testing.T, conv *mockConverter) *testEnv {
	t.Helper()

	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	te.Environment = &Environment{
		Now:         func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) },
		Stdout:      te.stdout,
		Stderr:      te.stderr,
		TermWidth:   func() int { return 80 },
		SetMaxProcs: func(bool, io.Writer) {},
		NewPool: func(size int, opts ...mdreport.Option) Pool {
			te.poolSize = size
			te.pool = newMockPool(size, conv)
			te.pool.opts = len(opts)
			return te.pool
		},
	}
	return te
}
