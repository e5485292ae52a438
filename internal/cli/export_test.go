package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mideakin/advisor/internal/store"
)

func TestExportText(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Exported 4 course(s)")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	count, err := s.CountCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	source, err := s.SnapshotSource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "testdata/courses.csv", source)
}

func TestExportJSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ExportResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 4, result.Exported)
	assert.Equal(t, dbPath, result.Database)
}

func TestExportMissingCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"no/such/file.csv", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeOpenFailed)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExportNoDatabaseAnywhere(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/courses.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeGeneric)
	assert.Contains(t, buf.String(), "no snapshot database given")
}
