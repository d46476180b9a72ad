package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrReferenceInUse is returned when a delete would break a foreign key.
	ErrReferenceInUse = errors.New("record is referenced by other records")
)

// foreign_key_violation
const pqForeignKeyViolation pq.ErrorCode = "23503"

// TranslateError maps driver errors onto the storage sentinel errors.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return ErrReferenceInUse
	}
	return err
}

// ExpectAffected returns ErrNotFound when a write touched no rows.
func ExpectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
