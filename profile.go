// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"io"
	"runtime"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TraceEvent is one entry in the Chrome trace-event format emitted by
// Profiler. The resulting file loads in chrome://tracing and compatible
// viewers.
type TraceEvent struct {
	Name  string         `json:"name"`
	Phase string         `json:"ph"`
	Ts    int64          `json:"ts"`
	Tid   int            `json:"tid"`
	Pid   int            `json:"pid"`
	Args  TraceEventArgs `json:"args"`
}

// TraceEventArgs carries the call site of a trace event.
type TraceEventArgs struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Profiler streams begin/end trace events to a writer as one JSON array.
// Events are recorded in call order; the array is terminated by Close.
// A Profiler is not safe for concurrent use.
type Profiler struct {
	w       io.Writer
	err     error
	started bool
}

// NewProfiler returns a Profiler writing to w and emits the array opener.
func NewProfiler(w io.Writer) *Profiler {
	p := &Profiler{w: w}
	_, p.err = io.WriteString(w, "[\n")
	return p
}

// Begin records the start of the named event at the caller's location.
func (p *Profiler) Begin(name string) { p.log(name, "B") }

// End records the end of the named event at the caller's location.
func (p *Profiler) End(name string) { p.log(name, "E") }

func (p *Profiler) log(name, phase string) {
	if p.err != nil {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	buf, err := json.Marshal(TraceEvent{
		Name:  name,
		Phase: phase,
		Ts:    time.Now().UnixMicro(),
		Tid:   1,
		Pid:   1,
		Args:  TraceEventArgs{File: file, Line: line},
	})
	if err != nil {
		p.err = err
		return
	}
	if p.started {
		if _, p.err = io.WriteString(p.w, ",\n"); p.err != nil {
			return
		}
	}
	p.started = true
	_, p.err = p.w.Write(buf)
}

// Close terminates the JSON array and reports any deferred write or
// encoding error.
func (p *Profiler) Close() error {
	if p.err != nil {
		return p.err
	}
	_, err := io.WriteString(p.w, "\n]\n")
	return err
}
