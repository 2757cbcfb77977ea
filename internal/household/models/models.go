// Package models defines the household roster and financial profile types
// the planner reads. Profiles are owned by the forms subsystem and read-only
// here.
package models

// Role distinguishes the main applicant from additional household members who
// contribute income.
type Role string

const (
	RoleMainApplicant       Role = "main_applicant"
	RoleAdditionalApplicant Role = "additional_applicant"
)

// MainApplicantKey is the stable person key of the main applicant in plans
// and extraction structures.
const MainApplicantKey = "main_applicant"

// Person is a household member who is a source of income for the
// application. Created at planning time, never mutated by the planner.
type Person struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// Member is one roster entry as the portal stores it.
type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NoIncome     bool   `json:"noIncome"`
	NotHousehold bool   `json:"notHousehold"`
}

// Household is the normalized roster for one application.
type Household struct {
	ApplicationID string
	MainApplicant Member
	// Members holds the additional household members in stable key order.
	Members []Member
}

// Applicant pairs a person with their declared financial profile for one
// planning run.
type Applicant struct {
	Person  Person
	Profile FinancialProfile
}
