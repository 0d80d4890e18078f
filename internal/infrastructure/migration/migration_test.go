package migration

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

func TestSelectStrategy(t *testing.T) {
	log := logger.NewLogger()

	tests := []struct {
		env, driver, want string
	}{
		{constants.EnvProduction, "sqlite", "gorm_auto_migrate"},
		{constants.EnvDevelopment, "mysql", "gorm_auto_migrate"},
		{constants.EnvProduction, "mysql", "goose"},
		{constants.EnvTest, "mysql", "goose"},
		{constants.EnvProduction, "postgres", "golang_migrate"},
	}
	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.driver, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStrategy(tt.env, tt.driver, log).GetName())
		})
	}
}

func TestManager_AutoMigrateCreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	m := NewManager(constants.EnvDevelopment, "sqlite", logger.NewLogger())
	require.NoError(t, m.Migrate(context.Background(), db))

	for _, table := range []string{
		constants.TableTenants, constants.TableUsers, constants.TableDocuments,
		constants.TableFilings, constants.TableAgents, constants.TableAuditLogs,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	_, versioned := m.Versioned()
	assert.False(t, versioned)
}

func TestEmbeddedScripts_CoverEveryTable(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres"} {
		sub, err := scriptsSub(driver)
		require.NoError(t, err)

		var content string
		require.NoError(t, fs.WalkDir(sub, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			b, err := fs.ReadFile(sub, path)
			content += string(b)
			return err
		}))

		for _, table := range []string{
			constants.TableTenants, constants.TableDepartments, constants.TableUsers,
			constants.TableAccessRequests, constants.TableCases, constants.TableDocuments,
			constants.TableFilings, constants.TableAgents, constants.TableOrganizedDocuments,
			constants.TableAuditLogs,
		} {
			assert.Contains(t, content, "CREATE TABLE IF NOT EXISTS "+table, driver)
		}
	}
}

func TestGenerator_CreatesNextPostgresPair(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "postgres")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init_schema.up.sql"), nil, 0o644))

	paths, err := NewGenerator(root, logger.NewLogger()).CreateMigration("postgres", "add_case_tags")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "000002_add_case_tags.up.sql"), paths[0])
	assert.FileExists(t, paths[1])
}

func TestGenerator_RejectsBadNames(t *testing.T) {
	_, err := NewGenerator(t.TempDir(), logger.NewLogger()).CreateMigration("postgres", "Add Tags")
	assert.Error(t, err)

	_, err = NewGenerator(t.TempDir(), logger.NewLogger()).CreateMigration("sqlite", "x")
	assert.Error(t, err)
}
