package models

import (
	"errors"
	"fmt"
	"strings"

	"blogly/db"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("already exists")
)

// required trims s and fails with ErrValidation if nothing is left
func required(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return s, nil
}

// lookupError converts gorm's missing row error to ErrNotFound
func lookupError(what string, id uint64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}

// writeError converts integrity violations reported by the store
func writeError(what string, err error) error {
	if db.IsDuplicateKey(err) {
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	}
	return err
}
