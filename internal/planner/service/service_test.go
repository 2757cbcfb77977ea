package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"belegplan/internal/catalog"
	household "belegplan/internal/household/models"
	householdservice "belegplan/internal/household/service"
	householdstore "belegplan/internal/household/store"
	"belegplan/internal/planner/cache"
	dErrors "belegplan/pkg/domain-errors"
)

type PlanServiceSuite struct {
	suite.Suite
	roster   *householdstore.InMemoryRosterStore
	profiles *householdstore.InMemoryProfileStore
	service  *Service
	ctx      context.Context
}

func (s *PlanServiceSuite) SetupTest() {
	s.roster = householdstore.NewInMemoryRosterStore()
	s.profiles = householdstore.NewInMemoryProfileStore()
	loader := householdservice.NewLoader(s.roster, s.profiles)
	s.service = New(loader, catalog.MustDefault())
	s.ctx = context.Background()
}

func TestPlanServiceSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) seedHousehold() {
	s.roster.PutHousehold("app-1", household.Member{ID: "user-1", Name: "Max Muster"}, map[string]any{
		"member-1": map[string]any{"name": "Erika Muster"},
	})
	s.profiles.PutProfile("user-1", map[string]any{
		"hasSalaryIncome":  true,
		"monthlynetsalary": "2400",
	})
	s.profiles.PutProfile("member-1", map[string]any{
		"haspensionincome": true,
		"monthlypension":   "1850",
	})
}

func (s *PlanServiceSuite) TestCreatePlan() {
	s.Run("computes tasks for both applicants", func() {
		s.seedHousehold()

		plan, err := s.service.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)
		s.Equal("app-1", plan.ApplicationID)
		s.Equal(2, plan.Counts.Persons)
		s.NotEmpty(plan.Tasks)
		s.Equal(len(plan.Tasks), plan.Counts.DocumentsToScan)

		values := 0
		persons := map[string]bool{}
		for _, task := range plan.Tasks {
			values += len(task.Values)
			persons[task.PersonID] = true
		}
		s.Equal(values, plan.Counts.ValuesToExtract)
		s.True(persons["main_applicant"])
		s.True(persons["member-1"])
	})

	s.Run("salary appears once per document with calc type both", func() {
		s.seedHousehold()

		plan, err := s.service.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)

		for _, task := range plan.Tasks {
			if task.PersonID != "main_applicant" || task.DocumentTypeID != "lohn_gehaltsbescheinigungen" {
				continue
			}
			occurrences := 0
			for _, v := range task.Values {
				if v.ValueFieldID == "monthlynetsalary" {
					occurrences++
					s.Equal(catalog.CalcBoth, v.CalcType)
				}
			}
			s.Equal(1, occurrences)
			return
		}
		s.Fail("expected a salary statement task for the main applicant")
	})

	s.Run("propagates household load failure", func() {
		_, err := s.service.CreatePlan(s.ctx, "no-such-app")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProfileLoad))
	})
}

func (s *PlanServiceSuite) TestPlanCache() {
	s.Run("serves the cached plan within the TTL", func() {
		s.seedHousehold()
		loader := householdservice.NewLoader(s.roster, s.profiles)
		cached := New(loader, catalog.MustDefault(), WithCache(cache.NewInMemoryCache(time.Minute)))

		first, err := cached.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)

		// Change the declared data; within the TTL the plan must not change.
		s.profiles.PutProfile("member-1", map[string]any{})

		second, err := cached.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)
		s.Equal(first.Counts, second.Counts)
	})

	s.Run("recomputes without a cache", func() {
		s.seedHousehold()

		first, err := s.service.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)
		s.Equal(2, first.Counts.Persons)

		s.profiles.PutProfile("member-1", map[string]any{})

		second, err := s.service.CreatePlan(s.ctx, "app-1")
		s.Require().NoError(err)
		s.Equal(1, second.Counts.Persons)
	})
}

func (s *PlanServiceSuite) TestSummary() {
	s.seedHousehold()

	summary, err := s.service.Summary(s.ctx, "app-1")
	s.Require().NoError(err)
	s.Equal("app-1", summary.ApplicationID)
	s.Require().NotEmpty(summary.HouseholdIncome)

	main := summary.HouseholdIncome[0]
	s.Equal("main_applicant", main.PersonID)
	s.Require().NotEmpty(main.Values)
	s.Equal("Monatliches Nettogehalt", main.Values[0].Label)
	s.Equal("Lohn-/Gehaltsbescheinigungen", main.Values[0].DocumentTitle)
	s.NotEmpty(main.Values[0].SearchTerms)

	s.Positive(summary.ValuesPerPerson["main_applicant"])
	s.Positive(summary.ValuesPerPerson["member-1"])
}
