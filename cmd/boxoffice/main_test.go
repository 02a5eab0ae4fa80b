package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayneri/boxoffice/internal/scenario"
)

func parseFlags(t *testing.T, args ...string) (*flag.FlagSet, *commandOptions) {
	t.Helper()
	fs, opts := baseFlags("test")
	fs.SetOutput(io.Discard)
	require.NoError(t, fs.Parse(args))
	return fs, opts
}

func TestEventFromFlagsOnlySetFields(t *testing.T) {
	fs, opts := parseFlags(t, "--rating", "750", "--cameras", "4")
	ev := eventFromFlags(fs, opts.event)

	require.NotNil(t, ev.Rating)
	assert.Equal(t, 750.0, *ev.Rating)
	require.NotNil(t, ev.Cameras)
	assert.Equal(t, 4, *ev.Cameras)
	assert.Nil(t, ev.ArenaSize)
	assert.Nil(t, ev.PPVLengthHours)
	assert.Nil(t, ev.AdBudget)
	assert.Empty(t, ev.Commentator)

	p := ev.Parameters()
	assert.Equal(t, scenario.DefaultArenaSize, p.ArenaSize)
	assert.Equal(t, 40000.0, p.CameraCost)
}

func TestBuildPlanFromFlags(t *testing.T) {
	fs, opts := parseFlags(t, "--name", "opener", "--ppv-length", "0", "--commentator", "regional", "--labels", "team=finance")
	plan, doc, err := buildPlan(fs, opts)
	require.NoError(t, err)

	assert.Equal(t, "opener", doc.Metadata.Name)
	require.Len(t, plan.Events, 1)
	assert.Equal(t, "opener-opener", plan.Events[0].ID)
	assert.Equal(t, "regional", plan.Events[0].Commentator)
	assert.Equal(t, 0, plan.Events[0].Params.PPVLengthHours)
	assert.Equal(t, "finance", plan.Labels["team"])
}

func TestBuildPlanRejectsInvalidFlags(t *testing.T) {
	fs, opts := parseFlags(t, "--rating", "1200", "--ppv-length", "5")
	_, _, err := buildPlan(fs, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be between 0 and 1000")
	assert.Contains(t, err.Error(), "ppvLengthHours")
}

func TestBuildPlanFromFile(t *testing.T) {
	fs, opts := parseFlags(t, "-f", "../../internal/scenario/testdata/arena-tour.yaml")
	plan, _, err := buildPlan(fs, opts)
	require.NoError(t, err)
	assert.Len(t, plan.Events, 2)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, []string{"md", "json", "csv"}, parseFormat(""))
	assert.Equal(t, []string{"json", "csv"}, parseFormat(" JSON, ,csv "))
	assert.True(t, includesFormat([]string{"md", "csv"}, "csv"))
	assert.False(t, includesFormat([]string{"md"}, "json"))
}

func TestExitErrorCode(t *testing.T) {
	cause := errors.New("estimate shows a loss")
	err := partialError(cause)
	assert.Equal(t, exitPartial, err.ExitCode())
	assert.Equal(t, "estimate shows a loss", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, exitFailure, exitError{}.ExitCode())
	assert.Equal(t, "exit status 1", exitError{}.Error())
}
