package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/komodo/config"
)

// OutputManager handles run output with CSV logging.
type OutputManager struct {
	dir         string
	windowsFile *os.File
	sessionFile *os.File

	// Track if headers have been written
	windowsHeaderWritten bool
	sessionHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "windows.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowsFile = f

	f, err = os.Create(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		om.windowsFile.Close()
		return nil, fmt.Errorf("creating sessions.csv: %w", err)
	}
	om.sessionFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow writes a window stats record to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.windowsFile, []WindowStats{stats}, &om.windowsHeaderWritten); err != nil {
		return fmt.Errorf("writing window: %w", err)
	}
	return nil
}

// WriteSessions writes session summaries to sessions.csv.
func (om *OutputManager) WriteSessions(sessions []SessionSummary) error {
	if om == nil || len(sessions) == 0 {
		return nil
	}
	if err := writeRecords(om.sessionFile, sessions, &om.sessionHeaderWritten); err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}
	return nil
}

// writeRecords appends records to f, with a header row on the first write.
func writeRecords[T any](f *os.File, records []T, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.windowsFile, om.sessionFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
