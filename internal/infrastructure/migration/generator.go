package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pressly/goose/v3"

	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var (
	migrationName  = regexp.MustCompile(`^[a-z0-9_]+$`)
	versionedFiles = regexp.MustCompile(`^(\d+)_.*\.sql$`)
)

// Generator creates new script files in the source tree. The files are
// embedded on the next build.
type Generator struct {
	scriptsRoot string
	logger      logger.Interface
}

func NewGenerator(scriptsRoot string, log logger.Interface) *Generator {
	return &Generator{
		scriptsRoot: scriptsRoot,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration writes an empty script for driver and returns the paths
// created.
func (g *Generator) CreateMigration(driver, name string) ([]string, error) {
	if !migrationName.MatchString(name) {
		return nil, fmt.Errorf("migration name must be snake_case: %q", name)
	}

	switch driver {
	case "postgres":
		return g.createGolangMigratePair(name)
	case "mysql", "":
		return g.createGooseScript(name)
	default:
		return nil, fmt.Errorf("driver %s has no versioned scripts", driver)
	}
}

func (g *Generator) createGooseScript(name string) ([]string, error) {
	dir := filepath.Join(g.scriptsRoot, "mysql")
	goose.SetSequential(true)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return nil, fmt.Errorf("failed to create migration: %w", err)
	}

	version, err := lastVersion(dir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("%05d_%s.sql", version, name))
	g.logger.Infow("migration file created", "file", path)
	return []string{path}, nil
}

func (g *Generator) createGolangMigratePair(name string) ([]string, error) {
	dir := filepath.Join(g.scriptsRoot, "postgres")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	version, err := lastVersion(dir)
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%06d_%s", version+1, name)
	up := filepath.Join(dir, prefix+".up.sql")
	down := filepath.Join(dir, prefix+".down.sql")

	if err := os.WriteFile(up, []byte("-- "+name+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(down, []byte("-- rollback "+name+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created", "up_file", up, "down_file", down)
	return []string{up, down}, nil
}

func lastVersion(dir string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	var last int64
	for _, e := range entries {
		m := versionedFiles.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		if v > last {
			last = v
		}
	}
	return last, nil
}
