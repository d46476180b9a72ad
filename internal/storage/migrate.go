package storage

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending migration from sourceURL (e.g. "file://migrations")
// and returns the schema versions before and after.
func Migrate(db *sql.DB, sourceURL string) (pre uint, post uint, err error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return 0, 0, err
	}

	pre, _, err = m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		pre = 0
	} else if err != nil {
		return 0, 0, err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return pre, 0, err
	}

	post, _, err = m.Version()
	if err != nil {
		return pre, 0, err
	}
	return pre, post, nil
}
