package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"belegplan/internal/household/models"
)

// PostgresRosterStore reads household rosters from the portal database. The
// household_members column is a JSON document in one of the two historical
// shapes; normalization happens here, once, at load time.
type PostgresRosterStore struct {
	db *sql.DB
}

func NewPostgresRosterStore(db *sql.DB) *PostgresRosterStore {
	return &PostgresRosterStore{db: db}
}

func (s *PostgresRosterStore) GetHousehold(ctx context.Context, applicationID string) (*models.Household, error) {
	query := `
		SELECT main_applicant_id, main_applicant_name, household_members
		FROM applications
		WHERE application_id = $1
	`
	var (
		mainID   string
		mainName string
		rawDoc   []byte
	)
	err := s.db.QueryRowContext(ctx, query, applicationID).Scan(&mainID, &mainName, &rawDoc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get household: %w", err)
	}

	var members any
	if len(rawDoc) > 0 {
		if err := json.Unmarshal(rawDoc, &members); err != nil {
			return nil, fmt.Errorf("decode household members: %w", err)
		}
	}

	return &models.Household{
		ApplicationID: applicationID,
		MainApplicant: models.Member{ID: mainID, Name: mainName},
		Members:       models.NormalizeMembers(members),
	}, nil
}

// PostgresProfileStore reads declared financial profiles.
type PostgresProfileStore struct {
	db *sql.DB
}

func NewPostgresProfileStore(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (s *PostgresProfileStore) GetProfile(ctx context.Context, personID string) (models.FinancialProfile, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT profile FROM financial_profiles WHERE person_id = $1`, personID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get financial profile: %w", err)
	}

	var profile models.FinancialProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode financial profile: %w", err)
	}
	return profile, nil
}
