package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", "MATH201"})

	err := cmd.Execute()
	require.NoError(t, err)

	newGoldie(t).Assert(t, "course_detail", buf.Bytes())
}

func TestLookupNormalizesInput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", "  csci100 "})

	err := cmd.Execute()
	require.NoError(t, err)

	newGoldie(t).Assert(t, "course_detail_no_prereqs", buf.Bytes())
}

func TestLookupJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", "MATH201"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result LookupResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.NotNil(t, result.Course)
	assert.Equal(t, "MATH201", result.Course.Number)
	require.Len(t, result.Course.Prerequisites, 2)
	assert.False(t, result.Course.Prerequisites[0].Resolved)
	assert.Equal(t, "MATH101", result.Course.Prerequisites[0].Number)
	assert.True(t, result.Course.Prerequisites[1].Resolved)
	assert.Equal(t, "Introduction to Computer Science", result.Course.Prerequisites[1].Title)
}

func TestLookupNotFound(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", "csci999"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	// The normalized number is echoed back.
	assert.Contains(t, buf.String(), "CSCI999")
}

func TestLookupEmptyNumber(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", "   "})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeEmptyNumber)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLookupSingleArgNeedsConfiguredCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"MATH201"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeGeneric)
	assert.Contains(t, buf.String(), "no catalog file given")
}
