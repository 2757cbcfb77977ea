// Package store provides access to the portal's household roster and
// financial profile records. Stores are interface-driven so the loader stays
// testable and persistence can be swapped without rewiring domain code.
package store

import (
	"context"

	"belegplan/internal/household/models"
	dErrors "belegplan/pkg/domain-errors"
)

// ErrNotFound keeps storage 404s consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

// RosterStore reads the household roster for an application.
type RosterStore interface {
	GetHousehold(ctx context.Context, applicationID string) (*models.Household, error)
}

// ProfileStore reads a person's declared financial profile.
type ProfileStore interface {
	GetProfile(ctx context.Context, personID string) (models.FinancialProfile, error)
}
