package consolidate

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"belegplan/internal/catalog"
	household "belegplan/internal/household/models"
	"belegplan/internal/planner/models"
)

type ConsolidateSuite struct {
	suite.Suite
	table *catalog.Catalog
}

func (s *ConsolidateSuite) SetupSuite() {
	var err error
	s.table, err = catalog.New(
		[]catalog.ValueField{
			{ID: "monthlynetsalary", Label: "Nettogehalt", DataType: catalog.TypeCurrency, Category: catalog.CategoryNetIncome},
			{ID: "monthlygrosssalary", Label: "Bruttogehalt", DataType: catalog.TypeCurrency, Category: catalog.CategoryGrossIncome},
			{ID: "cash_income_estimate", Label: "Bareinnahmen", DataType: catalog.TypeCurrency, Category: catalog.CategoryGeneric},
		},
		[]catalog.DocumentType{
			{ID: "lohn_gehaltsbescheinigungen", Title: "Lohn-/Gehaltsbescheinigung"},
		},
		[]catalog.Mapping{
			{ValueFieldID: "monthlynetsalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: catalog.CalcHouseholdIncome, SearchTerms: []string{"Netto", "Auszahlungsbetrag"}},
			{ValueFieldID: "monthlynetsalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: catalog.CalcAvailableMonthlyIncome, SearchTerms: []string{"Netto", "Nettoverdienst"}},
			{ValueFieldID: "monthlygrosssalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: catalog.CalcHouseholdIncome, SearchTerms: []string{"Brutto"}, Required: true},
			{ValueFieldID: "cash_income_estimate", CalcType: catalog.CalcHouseholdIncome},
		},
	)
	s.Require().NoError(err)
}

func TestConsolidateSuite(t *testing.T) {
	suite.Run(t, new(ConsolidateSuite))
}

func (s *ConsolidateSuite) requirement(personID string, calc catalog.CalcType, mappings ...catalog.Mapping) models.PersonValueRequirement {
	return models.PersonValueRequirement{
		Person:   household.Person{ID: personID, DisplayName: "Person " + personID},
		CalcType: calc,
		Mappings: mappings,
	}
}

func (s *ConsolidateSuite) mapping(field string, calc catalog.CalcType) catalog.Mapping {
	for _, m := range s.table.MappingsFor(calc) {
		if m.ValueFieldID == field {
			return m
		}
	}
	s.FailNowf("mapping not in fixture table", "%s/%s", field, calc)
	return catalog.Mapping{}
}

func (s *ConsolidateSuite) TestConsolidate() {
	s.Run("one task per document type and person", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
				s.mapping("monthlygrosssalary", catalog.CalcHouseholdIncome),
			),
			s.requirement("p2", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
		}, s.table)

		s.Require().Len(tasks, 2)
		s.Equal("p1", tasks[0].PersonID)
		s.Len(tasks[0].Values, 2)
		s.Equal("p2", tasks[1].PersonID)
		s.Len(tasks[1].Values, 1)
		s.Equal("Lohn-/Gehaltsbescheinigung", tasks[0].DocumentTitle)
	})

	s.Run("same field from both purposes escalates to both", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
			s.requirement("p1", catalog.CalcAvailableMonthlyIncome,
				s.mapping("monthlynetsalary", catalog.CalcAvailableMonthlyIncome),
			),
		}, s.table)

		s.Require().Len(tasks, 1)
		s.Require().Len(tasks[0].Values, 1)
		s.Equal(catalog.CalcBoth, tasks[0].Values[0].CalcType)
	})

	s.Run("search terms are unioned and sorted", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
			s.requirement("p1", catalog.CalcAvailableMonthlyIncome,
				s.mapping("monthlynetsalary", catalog.CalcAvailableMonthlyIncome),
			),
		}, s.table)

		s.Require().Len(tasks, 1)
		s.Equal([]string{"Auszahlungsbetrag", "Netto", "Nettoverdienst"}, tasks[0].Values[0].SearchTerms)
	})

	s.Run("document-less entries are excluded from tasks", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("cash_income_estimate", catalog.CalcHouseholdIncome),
			),
		}, s.table)
		s.Empty(tasks)
	})

	s.Run("required survives the merge", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlygrosssalary", catalog.CalcHouseholdIncome),
			),
		}, s.table)
		s.Require().Len(tasks, 1)
		s.True(tasks[0].Values[0].Required)
	})

	s.Run("task order follows first appearance", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p2", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
		}, s.table)
		s.Require().Len(tasks, 2)
		s.Equal("p2", tasks[0].PersonID)
		s.Equal("p1", tasks[1].PersonID)
	})

	s.Run("data type comes from the field definition", func() {
		tasks := Consolidate([]models.PersonValueRequirement{
			s.requirement("p1", catalog.CalcHouseholdIncome,
				s.mapping("monthlynetsalary", catalog.CalcHouseholdIncome),
			),
		}, s.table)
		s.Require().Len(tasks, 1)
		s.Equal(catalog.TypeCurrency, tasks[0].Values[0].DataType)
	})
}
