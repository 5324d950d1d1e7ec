package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/family-trips/internal/domain"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	wrapped := fmt.Errorf("service.CardService.Create: %w", domain.Invalid("name is required"))
	assert.ErrorIs(t, wrapped, domain.ErrValidation)
	assert.NotErrorIs(t, wrapped, domain.ErrNotFound)

	missing := fmt.Errorf("outer: %w", domain.Missing("Benefit not found"))
	assert.ErrorIs(t, missing, domain.ErrNotFound)
	assert.NotErrorIs(t, missing, domain.ErrValidation)
}

func TestPublicMessage(t *testing.T) {
	msg, ok := domain.PublicMessage(fmt.Errorf("x: %w", domain.Invalidf("%s is required", "title")))
	assert.True(t, ok)
	assert.Equal(t, "title is required", msg)

	msg, ok = domain.PublicMessage(domain.Missing("Trip not found"))
	assert.True(t, ok)
	assert.Equal(t, "Trip not found", msg)

	// Bare sentinels and driver errors carry nothing safe to show a client.
	_, ok = domain.PublicMessage(domain.ErrNotFound)
	assert.False(t, ok)
	_, ok = domain.PublicMessage(errors.New("connection refused"))
	assert.False(t, ok)
}
