// Package resolver evaluates a person's financial profile against the rule
// table's presence predicates. It is deterministic and side-effect-free: the
// same profile always yields the same requirement set.
package resolver

import (
	"belegplan/internal/catalog"
	household "belegplan/internal/household/models"
	"belegplan/internal/planner/models"
)

// Resolve walks the table entries for one calculation purpose and returns
// the requirement set for the given person, or nil when no entry applies.
// An entry applies when its gating flag (if any) is set on the profile and
// the declared field holds a value (hasValue, or hasArrayValue for
// line-item fields).
func Resolve(person household.Person, profile household.FinancialProfile, table *catalog.Catalog, calc catalog.CalcType) *models.PersonValueRequirement {
	var satisfied []catalog.Mapping
	for _, m := range table.MappingsFor(calc) {
		if !applies(m, profile, table) {
			continue
		}
		satisfied = append(satisfied, m)
	}
	if len(satisfied) == 0 {
		return nil
	}
	return &models.PersonValueRequirement{
		Person:   person,
		CalcType: calc,
		Mappings: satisfied,
	}
}

// ResolveAll runs both calculation purposes for a set of applicants,
// returning the two requirement lists in applicant order. Persons with an
// empty requirement set are omitted entirely.
func ResolveAll(applicants []household.Applicant, table *catalog.Catalog) (householdIncome, availableMonthly []models.PersonValueRequirement) {
	for _, a := range applicants {
		if req := Resolve(a.Person, a.Profile, table, catalog.CalcHouseholdIncome); req != nil {
			householdIncome = append(householdIncome, *req)
		}
	}
	for _, a := range applicants {
		if req := Resolve(a.Person, a.Profile, table, catalog.CalcAvailableMonthlyIncome); req != nil {
			availableMonthly = append(availableMonthly, *req)
		}
	}
	return householdIncome, availableMonthly
}

func applies(m catalog.Mapping, profile household.FinancialProfile, table *catalog.Catalog) bool {
	// Gating comes first: a populated amount behind an unset flag is not a
	// claim, it is stale form state.
	if m.GateFlag != "" && !profile.Flag(m.GateFlag) {
		return false
	}
	if field, ok := table.Field(m.ValueFieldID); ok && field.IsArray {
		return profile.HasArrayValue(m.ValueFieldID)
	}
	return profile.HasValue(m.ValueFieldID)
}
