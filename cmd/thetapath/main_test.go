package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetanav/thetastar"
)

const room = "../../scene/testdata/room.yaml"

func TestRun_SceneQueriesText(t *testing.T) {
	defer thetastar.SetLogger(nil)
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-scene", room}, &out, &errOut))

	s := out.String()
	assert.Contains(t, s, "across: goal_reached")
	assert.Contains(t, s, "open-side: goal_reached, 2 points")
	assert.Contains(t, s, "  0: (-4.000, 0.500, -4.000)")
	assert.Empty(t, errOut.String())
}

func TestRun_SingleQueryCSV(t *testing.T) {
	defer thetastar.SetLogger(nil)
	var out bytes.Buffer
	require.NoError(t, run([]string{"-scene", room, "-from", "-4,0.5,4", "-to", "4, 0.5, 4", "-format", "csv"}, &out, &bytes.Buffer{}))

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	want := [][]string{
		{"query", "outcome", "index", "x", "y", "z"},
		{"cli", "goal_reached", "0", "-4", "0.5", "4"},
		{"cli", "goal_reached", "1", "4", "0.5", "4"},
	}
	assert.Equal(t, want, records)
}

func TestRun_UnresolvedIsReportedNotFatal(t *testing.T) {
	defer thetastar.SetLogger(nil)
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-from", "100,0,100", "-to", "0,0,0", "-metrics"}, &out, &errOut))

	assert.Contains(t, out.String(), "cli: endpoint_unresolved, 1 points")
	assert.Contains(t, out.String(), `thetanav_searches_total{outcome="endpoint_unresolved"} 1`)
	assert.Contains(t, errOut.String(), "start point")
}

func TestRun_BadFlags(t *testing.T) {
	cases := map[string][]string{
		"Format":   {"-format", "json"},
		"FromOnly": {"-from", "1,2,3"},
		"BadVec":   {"-from", "1,2", "-to", "1,2,3"},
		"NotFloat": {"-from", "a,b,c", "-to", "1,2,3"},
		"NoFile":   {"-scene", "does-not-exist.yaml"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(args, &bytes.Buffer{}, &bytes.Buffer{}))
		})
	}
}
