package kitaev

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	task := KitaevHamiltonianTask{
		ExperimentID:     "storage-test",
		NModes:           4,
		Tunneling:        1.0,
		Superconducting:  0.5,
		OccupiedOrbitals: []int{0},
		Shots:            []int{100},
	}

	data := map[string]float64{"edge_correlation": -0.93, "energy": -2.5}
	require.NoError(t, Save(task, data, dir, WriteExclusive))

	var loaded map[string]float64
	require.NoError(t, Load(task, dir, &loaded))
	assert.Equal(t, data, loaded)

	// The file lands at the task's derived path.
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(task.Filename())+".json"))
	assert.NoError(t, err)
}

func TestSaveExclusiveRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	task := KitaevHamiltonianTask{ExperimentID: "once", NModes: 2, Shots: []int{1}}

	require.NoError(t, Save(task, "first", dir, WriteExclusive))

	err := Save(task, "second", dir, WriteExclusive)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)

	// The original data survives.
	var got string
	require.NoError(t, Load(task, dir, &got))
	assert.Equal(t, "first", got)
}

func TestSaveOverwriteReplaces(t *testing.T) {
	dir := t.TempDir()
	task := KitaevHamiltonianTask{ExperimentID: "replace", NModes: 2, Shots: []int{1}}

	require.NoError(t, Save(task, "old", dir, WriteExclusive))
	require.NoError(t, Save(task, "new", dir, WriteOverwrite))

	var got string
	require.NoError(t, Load(task, dir, &got))
	assert.Equal(t, "new", got)
}

func TestLoadMissingFile(t *testing.T) {
	task := KitaevHamiltonianTask{ExperimentID: "absent", NModes: 2}
	var v any
	err := Load(task, t.TempDir(), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
