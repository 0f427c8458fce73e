package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"passat/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "bookings_booking_number_key"}

	assert.True(t, repository.IsUniqueViolation(uniqueErr))
	assert.True(t, repository.IsUniqueViolation(uniqueErr, "bookings_booking_number_key"))
	assert.False(t, repository.IsUniqueViolation(uniqueErr, "rooms_number_key"))

	wrapped := fmt.Errorf("failed to insert data (booking): %w", uniqueErr)
	assert.True(t, repository.IsUniqueViolation(wrapped))

	assert.False(t, repository.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Constraint: "bookings_room_id_fkey"}

	assert.True(t, repository.IsForeignKeyViolation(fkErr))
	assert.True(t, repository.IsForeignKeyViolation(fkErr, "bookings_room_id_fkey"))
	assert.False(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
}

func TestIsExclusionViolation(t *testing.T) {
	exclErr := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}

	assert.True(t, repository.IsExclusionViolation(exclErr))
	assert.False(t, repository.IsExclusionViolation(&pq.Error{Code: "23505"}))
}
