package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv"})

	err := cmd.Execute()
	require.NoError(t, err)

	newGoldie(t).Assert(t, "course_list", buf.Bytes())
}

func TestListJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ListResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Courses, 4)
	assert.Equal(t, "CSCI100", result.Courses[0].Number)
	assert.Equal(t, "MATH201", result.Courses[3].Number)
	require.NotNil(t, result.Load)
	assert.Equal(t, 4, result.Load.Accepted)
	assert.NotEmpty(t, result.Load.ID)
}

func TestListMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"no/such/file.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeOpenFailed)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
}

func TestListEmptyCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/malformed.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeEmptyLoad)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestListNoFileAnywhere(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeGeneric)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "no catalog file given")
}
