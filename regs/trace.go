// Copyright (c) 2025 Visvasity LLC

package regs

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// The trace side channel logs every register access as a line
//
//	REG-MAP WRITE 0x7ffc30c85c70 42405
//	REG-MAP READ  0x7ffc30c85c70 42405
//
// on the configured writer. Tracing changes observability only, never
// results; it does cost a formatted write per access, so leave it off
// outside debugging sessions.

const (
	traceOpRead  = "READ "
	traceOpWrite = "WRITE"
)

var (
	traceOn atomic.Bool
	traceMu sync.Mutex
	traceW  io.Writer
)

// EnableTrace starts logging every register read and write to w.
func EnableTrace(w io.Writer) {
	traceMu.Lock()
	traceW = w
	traceMu.Unlock()
	traceOn.Store(true)
}

// DisableTrace stops access logging.
func DisableTrace() {
	traceOn.Store(false)
	traceMu.Lock()
	traceW = nil
	traceMu.Unlock()
}

func traceEnabled() bool { return traceOn.Load() }

func tracef(op string, addr uintptr, val any) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if traceW == nil {
		return
	}
	fmt.Fprintf(traceW, "REG-MAP %s 0x%x %v\n", op, addr, val)
}
