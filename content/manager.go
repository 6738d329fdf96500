package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-hauler/component"
)

// Manager discovers and loads system fixtures from a directory
type Manager struct {
	dir    string
	files  []string
	logger *zap.Logger
}

// NewManager creates a manager over dir
func NewManager(dir string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{dir: dir, logger: logger}
}

// Discover scans the directory for .yaml/.yml files, skipping hidden files
// A missing directory is not an error, it yields no files
func (m *Manager) Discover() error {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		m.logger.Debug("systems directory missing", zap.String("dir", m.dir))
		m.files = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read systems directory: %w", err)
	}

	m.files = m.files[:0]
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
			m.files = append(m.files, filepath.Join(m.dir, name))
		}
	}
	m.logger.Debug("discovered systems", zap.Int("count", len(m.files)))
	return nil
}

// Files returns discovered fixture paths in directory order
func (m *Manager) Files() []string {
	return m.files
}

// LoadFile reads one fixture
func LoadFile(path string) (*component.System, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open system %s: %w", path, err)
	}
	defer fh.Close()

	sys, err := LoadYAML(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sys, nil
}

// LoadAll loads every discovered fixture, stopping at the first error
func (m *Manager) LoadAll() ([]*component.System, error) {
	systems := make([]*component.System, 0, len(m.files))
	for _, path := range m.files {
		sys, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		m.logger.Info("loaded system", zap.String("name", sys.Name), zap.Int("bodies", len(sys.Bodies)))
		systems = append(systems, sys)
	}
	return systems, nil
}
