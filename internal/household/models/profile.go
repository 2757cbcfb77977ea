package models

import "strings"

// FinancialProfile is the declared financial data for one person: a flat map
// of field name to scalar or array value, plus the boolean has-X gating flags
// the forms subsystem maintains. Field names are a fixed, versioned contract
// shared with the forms.
type FinancialProfile map[string]any

// incomeFlags are the gating flags that mark a profile as claiming any
// income at all. The list mirrors the forms-side income model.
var incomeFlags = []string{
	"isEarningRegularIncome",
	"hasSalaryIncome",
	"hasbusinessincome",
	"haspensionincome",
	"hasunemploymentbenefit",
	"haselterngeld",
	"haskindergeld",
	"haskrankengeld",
	"hasmaintenanceincome",
	"hasrentalincome",
	"hascapitalincome",
	"hasminijob",
}

// Flag reports whether the named boolean gating flag is set. Absent or
// non-boolean values count as false; forms occasionally persist flags as the
// strings "true"/"false".
func (p FinancialProfile) Flag(name string) bool {
	switch v := p[name].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// ClaimsIncome reports whether the profile claims any income source. The
// main applicant is only planned for when this holds.
func (p FinancialProfile) ClaimsIncome() bool {
	for _, flag := range incomeFlags {
		if p.Flag(flag) {
			return true
		}
	}
	return false
}

// HasValue reports whether the named field holds a usable declared value:
// non-nil, non-empty string, non-zero number. Mirrors the forms-side
// presence semantics.
func (p FinancialProfile) HasValue(field string) bool {
	return hasValue(p[field])
}

// HasArrayValue reports whether the named field holds a non-empty line-item
// list with at least one entry whose amount (or amountTotal) passes
// HasValue.
func (p FinancialProfile) HasArrayValue(field string) bool {
	items, ok := p[field].([]any)
	if !ok || len(items) == 0 {
		return false
	}
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if hasValue(entry["amount"]) || hasValue(entry["amountTotal"]) {
			return true
		}
	}
	return false
}

func hasValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case bool:
		return val
	case float64:
		return val != 0
	case float32:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}
