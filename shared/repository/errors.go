package repository

import (
	"errors"

	"passat/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err was caused by a violated unique
// constraint, optionally narrowed to a named constraint.
func IsUniqueViolation(err error, constraints ...string) bool {
	return isPqError(err, constant.PqErrorCodeUniqueViolation, constraints...)
}

// IsForeignKeyViolation reports whether err was caused by a violated foreign
// key constraint.
func IsForeignKeyViolation(err error, constraints ...string) bool {
	return isPqError(err, constant.PqErrorCodeFkViolation, constraints...)
}

// IsExclusionViolation reports whether err was caused by a violated exclusion
// constraint.
func IsExclusionViolation(err error, constraints ...string) bool {
	return isPqError(err, constant.PqErrorCodeExclusionViolation, constraints...)
}

func isPqError(err error, code string, constraints ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	if string(pqErr.Code) != code {
		return false
	}

	if len(constraints) == 0 {
		return true
	}

	for _, constraint := range constraints {
		if pqErr.Constraint == constraint {
			return true
		}
	}

	return false
}
