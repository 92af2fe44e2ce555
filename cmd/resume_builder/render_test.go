package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_FromSnapshot(t *testing.T) {
	server := fakeServices(t)
	a, _, _ := testApp(t, server, testEnv())
	snapshot := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, execute(t, a, "build", "--output-dir", t.TempDir(), "--save-snapshot", snapshot))

	// no credentials and no network for the offline render
	offline, renderer, stdout := testApp(t, nil, map[string]string{})
	outDir := t.TempDir()
	require.NoError(t, execute(t, offline, "render", "--snapshot", snapshot, "--output-dir", outDir, "--website", "https://ada.dev"))

	require.Len(t, renderer.documents, 1)
	assert.Contains(t, renderer.documents[0], "Ada Lovelace")
	assert.Contains(t, renderer.documents[0], "ada.dev")
	assert.Contains(t, stdout.String(), "Step 3/3")
}

func TestRender_RequiresSnapshotFlag(t *testing.T) {
	a, _, _ := testApp(t, nil, map[string]string{})

	err := execute(t, a, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot")
}

func TestRender_MissingSnapshotFile(t *testing.T) {
	a, renderer, _ := testApp(t, nil, map[string]string{})

	err := execute(t, a, "render", "--snapshot", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.Empty(t, renderer.documents)
}
