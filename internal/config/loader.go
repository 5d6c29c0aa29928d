// Package config loads tmuxinator project descriptors from the user's
// config directory. Malformed descriptors are skipped with a warning and
// never abort a load.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/muxdash/internal/domain"
	"github.com/alexanderramin/muxdash/internal/matrix"
)

// dateLayout is the only accepted deadline format.
const dateLayout = "2006-01-02"

// projectFile mirrors the fields muxdash reads from a tmuxinator YAML file.
// Extra keys (windows, panes, hooks) are ignored.
type projectFile struct {
	Name        string `yaml:"name"`
	DDL         string `yaml:"ddl"`
	Priority    string `yaml:"priority"`
	Description string `yaml:"description"`
	Root        string `yaml:"root"`
}

// LoadResult carries the projects that parsed plus warnings for the ones
// that did not.
type LoadResult struct {
	Projects []*domain.Project
	Warnings []string
}

// Loader reads project descriptors from a single directory.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader for the given config directory.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// DefaultDir resolves the tmuxinator config directory:
// MUXDASH_CONFIG_DIR, then ~/.config/tmuxinator, then ~/.tmuxinator.
func DefaultDir() (string, error) {
	if dir := os.Getenv("MUXDASH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "tmuxinator")
	if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
		return dir, nil
	}
	return filepath.Join(home, ".tmuxinator"), nil
}

// Load reads every *.yml descriptor in the directory (template.yml
// excluded) and returns the projects in deadline-triage order. A missing
// directory yields an empty result, not an error.
func (l *Loader) Load() *LoadResult {
	res := &LoadResult{}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return res
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("reading %s: %v", l.Dir, err))
		return res
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yml") || name == "template.yml" {
			continue
		}
		path := filepath.Join(l.Dir, name)
		project, warn := loadOne(path)
		if warn != "" {
			res.Warnings = append(res.Warnings, warn)
			continue
		}
		project.LoadProgressNote()
		res.Projects = append(res.Projects, project)
	}

	matrix.TriageOrder(res.Projects)
	return res
}

// loadOne parses a single descriptor. It returns a non-empty warning
// instead of a project when the file cannot be used at all; an unparsable
// ddl merely leaves the deadline absent.
func loadOne(path string) (*domain.Project, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Sprintf("failed to read %s: %v", path, err)
	}

	var raw projectFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Sprintf("failed to parse %s: %v", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".yml")

	var deadline *time.Time
	if raw.DDL != "" {
		if parsed, err := time.Parse(dateLayout, raw.DDL); err == nil {
			deadline = &parsed
		}
	}

	return &domain.Project{
		Name:        domain.CoalesceStr(raw.Name, stem),
		Deadline:    deadline,
		Priority:    domain.NormalizePriority(raw.Priority),
		Description: raw.Description,
		Root:        expandTilde(raw.Root),
		FilePath:    path,
	}, ""
}

// expandTilde resolves a leading ~ against the user's home directory.
func expandTilde(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
