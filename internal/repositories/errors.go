package repositories

import "errors"

// Error taxonomy shared by both backends and by the services built on top.
// Backend failures that are none of these sentinels are wrapped and
// propagated as-is.
var (
	// ErrNotFound is returned where the contract promises a resolved entity
	// (UpdateByID, default-language lookup) and nothing matched.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals a uniqueness violation within a scope, e.g. a
	// duplicate (task, language) template pair.
	ErrConflict = errors.New("record already exists")

	// ErrInvalidReference signals a language identifier that does not resolve
	// to an active language.
	ErrInvalidReference = errors.New("invalid or inactive reference")

	// ErrGuardViolation signals an entity-specific business guard blocking a
	// mutation, e.g. deleting a currency that is still in use.
	ErrGuardViolation = errors.New("operation blocked by business rule")

	// ErrNoDefaultLanguage signals that no language carries the default flag.
	ErrNoDefaultLanguage = errors.New("no default language configured")
)
