package service

import (
	"errors"
	"time"

	"agronat/internal/apierror"

	"gorm.io/gorm"
)

// notFoundOr maps a gorm record miss to a 404 with the given message and
// everything else to a wrapped 500.
func notFoundOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(format, args...)
	}
	return apierror.Internal(err)
}

// runTx runs fn inside a transaction when a database is available. A nil db
// means the repositories are in-memory stubs; fn runs directly with a nil tx.
func runTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}

// parseFecha accepts an optional YYYY-MM-DD string.
func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apierror.Validation("fecha invalida: %s", s)
	}
	return &t, nil
}
