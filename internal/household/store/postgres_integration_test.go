//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"belegplan/internal/household/store"
	"belegplan/pkg/testutil/containers"
)

type PostgresHouseholdSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	roster   *store.PostgresRosterStore
	profiles *store.PostgresProfileStore
	ctx      context.Context
}

func TestPostgresHouseholdSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresHouseholdSuite))
}

func (s *PostgresHouseholdSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.roster = store.NewPostgresRosterStore(s.postgres.DB)
	s.profiles = store.NewPostgresProfileStore(s.postgres.DB)
	s.ctx = context.Background()
}

func (s *PostgresHouseholdSuite) SetupTest() {
	s.Require().NoError(s.postgres.Truncate(s.ctx, "applications", "financial_profiles"))
}

func (s *PostgresHouseholdSuite) TestGetHousehold() {
	s.Run("keyed member document", func() {
		_, err := s.postgres.DB.ExecContext(s.ctx, `
			INSERT INTO applications (application_id, main_applicant_id, main_applicant_name, household_members)
			VALUES ('app-1', 'user-1', 'Max Muster',
				'{"b-uuid": {"name": "Zweite Person"}, "a-uuid": {"name": "Erste Person", "noIncome": true}}')
		`)
		s.Require().NoError(err)

		household, err := s.roster.GetHousehold(s.ctx, "app-1")
		s.Require().NoError(err)
		s.Equal("user-1", household.MainApplicant.ID)
		s.Equal("Max Muster", household.MainApplicant.Name)
		s.Require().Len(household.Members, 2)
		s.Equal("a-uuid", household.Members[0].ID)
		s.True(household.Members[0].NoIncome)
		s.Equal("b-uuid", household.Members[1].ID)
	})

	s.Run("legacy array document", func() {
		_, err := s.postgres.DB.ExecContext(s.ctx, `
			INSERT INTO applications (application_id, main_applicant_id, main_applicant_name, household_members)
			VALUES ('app-2', 'user-2', 'Erika Muster', '[{"name": "Altbestand"}]')
		`)
		s.Require().NoError(err)

		household, err := s.roster.GetHousehold(s.ctx, "app-2")
		s.Require().NoError(err)
		s.Require().Len(household.Members, 1)
		s.Equal("legacy_0", household.Members[0].ID)
	})

	s.Run("unknown application", func() {
		_, err := s.roster.GetHousehold(s.ctx, "nope")
		s.Require().ErrorIs(err, store.ErrNotFound)
	})
}

func (s *PostgresHouseholdSuite) TestGetProfile() {
	_, err := s.postgres.DB.ExecContext(s.ctx, `
		INSERT INTO financial_profiles (person_id, profile)
		VALUES ('user-1', '{"hasSalaryIncome": true, "monthlynetsalary": "2400"}')
	`)
	s.Require().NoError(err)

	profile, err := s.profiles.GetProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.True(profile.Flag("hasSalaryIncome"))
	s.True(profile.HasValue("monthlynetsalary"))

	_, err = s.profiles.GetProfile(s.ctx, "unknown")
	s.Require().ErrorIs(err, store.ErrNotFound)
}
