package migration

import (
	"embed"
	"io/fs"
)

//go:embed scripts/mysql/*.sql scripts/postgres/*.sql
var scriptsFS embed.FS

// scriptsDir is the directory of versioned scripts for a driver.
func scriptsDir(driver string) string {
	if driver == "postgres" {
		return "scripts/postgres"
	}
	return "scripts/mysql"
}

func scriptsSub(driver string) (fs.FS, error) {
	return fs.Sub(scriptsFS, scriptsDir(driver))
}
