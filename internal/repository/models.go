package repository

import "errors"

// ErrVersionConflict is returned when an update loses the optimistic-version
// race against a concurrent edit of the same record.
var ErrVersionConflict = errors.New("version conflict")

// Models lists every row model for schema migration.
func Models() []any {
	return []any{
		&userRow{},
		&authTokenRow{},
		&roomRow{},
		&bookingRow{},
		&bookingDocumentRow{},
		&costRow{},
		&reminderLogRow{},
		&uploadRow{},
	}
}
