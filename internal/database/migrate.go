package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"trivia/database/migrations"
	"trivia/internal/config"
	"trivia/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Direction selects which way migrations run
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the embedded migrations for the given driver.
func RunMigrations(db *sql.DB, driver string, dir Direction) error {
	if driver == config.DriverOracle {
		return runOracleMigrations(db, migrations.Oracle, dir)
	}
	return runPostgresMigrations(db, dir)
}

func runPostgresMigrations(db *sql.DB, dir Direction) error {
	src, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	dbDriver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx", dbDriver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch dir {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations %s: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		logger.Get().Info("Migrations completed", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	return nil
}

// runOracleMigrations executes *.<dir>.sql files in name order. Each file
// holds statements separated by a line containing only "/".
func runOracleMigrations(db *sql.DB, fsys fs.FS, dir Direction) error {
	files, err := migrationFiles(fsys, "oracle", dir)
	if err != nil {
		return err
	}

	for _, name := range files {
		content, err := fs.ReadFile(fsys, "oracle/"+name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

func migrationFiles(fsys fs.FS, root string, dir Direction) ([]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, "\n/\n") {
		stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), "/"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
