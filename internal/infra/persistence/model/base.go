// Package model holds the GORM table mappings. Primary keys are UUIDv7
// assigned in Go, so inserts behave the same on every dialect.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ensureID fills id with a time-ordered UUID when unset.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate id")
	}
	*id = generated

	return nil
}

// All lists every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&CardModel{},
		&ClickModel{},
	}
}
