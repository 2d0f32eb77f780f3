package kitaev

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteMode controls how Save treats an existing result file.
type WriteMode int

const (
	// WriteExclusive fails when the file already exists. This is the
	// default for experiment data: results are written once.
	WriteExclusive WriteMode = iota
	// WriteOverwrite truncates an existing file.
	WriteOverwrite
)

// resultPath maps a task to its JSON file under baseDir.
func resultPath(task KitaevHamiltonianTask, baseDir string) string {
	return filepath.Join(baseDir, filepath.FromSlash(task.Filename())+".json")
}

// Save persists data as JSON at the task's derived path under baseDir,
// creating directories as needed. Save is not safe for concurrent writers to
// the same task.
func Save(task KitaevHamiltonianTask, data any, baseDir string, mode WriteMode) error {
	filename := resultPath(task, baseDir)
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	flags := os.O_WRONLY | os.O_CREATE
	if mode == WriteExclusive {
		flags |= os.O_EXCL
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flags, 0o644)
	if err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(data); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// Load reads the persisted JSON for task from baseDir into v.
func Load(task KitaevHamiltonianTask, baseDir string, v any) error {
	filename := resultPath(task, baseDir)
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	return nil
}
