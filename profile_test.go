// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfilerEmitsTraceEventArray(t *testing.T) {
	var out bytes.Buffer
	p := NewProfiler(&out)
	p.Begin("tokenize")
	p.End("tokenize")
	p.Begin("parse")
	p.End("parse")
	require.NoError(t, p.Close())

	var events []TraceEvent
	require.NoError(t, json.Unmarshal(out.Bytes(), &events))
	require.Len(t, events, 4)

	require.Equal(t, "tokenize", events[0].Name)
	require.Equal(t, "B", events[0].Phase)
	require.Equal(t, "tokenize", events[1].Name)
	require.Equal(t, "E", events[1].Phase)
	require.Equal(t, "parse", events[2].Name)
	require.Equal(t, "B", events[2].Phase)
	require.Equal(t, "E", events[3].Phase)

	for i, ev := range events {
		require.Equal(t, 1, ev.Tid)
		require.Equal(t, 1, ev.Pid)
		require.True(t, strings.HasSuffix(ev.Args.File, "profile_test.go"), "event %d file %q", i, ev.Args.File)
		require.Greater(t, ev.Args.Line, 0)
		if i > 0 {
			require.GreaterOrEqual(t, ev.Ts, events[i-1].Ts)
		}
	}
}

func TestProfilerEmptyTrace(t *testing.T) {
	var out bytes.Buffer
	p := NewProfiler(&out)
	require.NoError(t, p.Close())

	var events []TraceEvent
	require.NoError(t, json.Unmarshal(out.Bytes(), &events))
	require.Empty(t, events)
}
