// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package playtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRecorder(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)

	rec.Verbo("dropped")
	rec.Debug("debug", zap.Int("n", 1))
	rec.With(zap.String("playground", "generics")).Info("info", zap.Bool("ok", true))
	rec.Error("error")

	require.Len(t, rec.Records, 3, "records at or above Debug")
	require.Len(t, rec.At(logging.Info), 1, "At(Info)")
	require.Len(t, rec.AtLeast(logging.Info), 2, "AtLeast(Info)")

	info := rec.At(logging.Info)[0]
	require.Equal(t, "info", info.Msg)
	require.Equal(t, map[string]any{
		"playground": "generics",
		"ok":         true,
	}, info.FieldMap())
}

func TestLogRecorderPlaygroundFilters(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)

	gen := rec.With(zap.String(PlaygroundKey, "generics"))
	gen.Debug("Running example", zap.String(ExampleKey, "mid"))
	gen.Trace("Running example", zap.String(ExampleKey, "traced"))
	gen.Debug("Running example", zap.String(ExampleKey, "add"))
	gen.Info("Playground complete", zap.Int("examples", 2))

	pro := rec.With(zap.String(PlaygroundKey, "protocols"))
	pro.Debug("Running example", zap.String(ExampleKey, "top speed"))
	rec.Debug("no playground", zap.String(ExampleKey, "orphan"))

	require.Equal(t, []string{"mid", "add"}, rec.ExamplesRun("generics", logging.Debug), "ExamplesRun(generics, Debug)")
	require.Equal(t, []string{"traced"}, rec.ExamplesRun("generics", logging.Trace), "ExamplesRun(generics, Trace)")
	require.Equal(t, []string{"top speed"}, rec.ExamplesRun("protocols", logging.Debug), "ExamplesRun(protocols, Debug)")
	require.Empty(t, rec.ExamplesRun("swift", logging.Debug), "ExamplesRun(swift, Debug)")

	require.Len(t, rec.ForPlayground("generics"), 4, "ForPlayground(generics)")
	require.Len(t, rec.WithField(ExampleKey, "orphan"), 1, "WithField(example, orphan)")

	last := rec.ForPlayground("generics")[3]
	n, ok := last.Field("examples")
	require.True(t, ok, "Field(examples)")
	require.EqualValues(t, 2, n)
	_, ok = last.Field(ExampleKey)
	require.False(t, ok, "Field(example) on completion log")
}
