package models

import (
	"fmt"
	"strconv"
)

// ApplyExtracted copies extractor output into the record, restricted to the
// keys the placeholder defines. Unknown keys are ignored. It returns the
// file-level confidence and method when the extractor provided them.
func (r *ValueRecord) ApplyExtracted(extracted map[string]any) (confidence float64, method string) {
	for key, raw := range extracted {
		switch key {
		case "gross_value":
			setString(r.GrossValue, raw)
		case "net_value":
			setString(r.NetValue, raw)
		case "amount":
			setString(r.Amount, raw)
		case "year":
			setString(r.Year, raw)
		case "month":
			setString(r.Month, raw)
		case "is_monthly":
			setBool(r.IsMonthly, raw)
		case "is_recurring":
			setBool(r.IsRecurring, raw)
		case "laufzeit":
			setString(r.Laufzeit, raw)
		case "confidence":
			if c, ok := toFloat(raw); ok {
				if r.Confidence != nil {
					*r.Confidence = c
				}
				confidence = c
			}
		case "method_used":
			if m, ok := raw.(string); ok {
				method = m
			}
		}
	}
	return confidence, method
}

func setString(dst *string, raw any) {
	if dst == nil {
		return
	}
	switch v := raw.(type) {
	case string:
		*dst = v
	case float64:
		*dst = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		*dst = strconv.Itoa(v)
	case bool:
		*dst = strconv.FormatBool(v)
	case nil:
		// Extractors may explicitly null out a field they could not read.
		*dst = ""
	default:
		*dst = fmt.Sprintf("%v", v)
	}
}

func setBool(dst *bool, raw any) {
	if dst == nil {
		return
	}
	switch v := raw.(type) {
	case bool:
		*dst = v
	case string:
		*dst = v == "true"
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
