package models

import (
	"fmt"
	"sort"
)

// NormalizeMembers converts the two historical storage shapes for additional
// household members into the canonical keyed form. Legacy records store a
// plain JSON array; current records store a map keyed by a stable UUID. Array
// entries get a synthesized legacy_<index> key so the rest of the pipeline
// never branches on shape.
func NormalizeMembers(raw any) []Member {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		members := make([]Member, 0, len(v))
		for i, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			m := memberFromDoc(entry)
			if m.ID == "" {
				m.ID = fmt.Sprintf("legacy_%d", i)
			}
			members = append(members, m)
		}
		return members
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		// Map iteration order is random; key order keeps planning runs
		// reproducible.
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, key := range keys {
			entry, ok := v[key].(map[string]any)
			if !ok {
				continue
			}
			m := memberFromDoc(entry)
			m.ID = key
			members = append(members, m)
		}
		return members
	default:
		return nil
	}
}

func memberFromDoc(doc map[string]any) Member {
	m := Member{}
	if id, ok := doc["id"].(string); ok {
		m.ID = id
	}
	if name, ok := doc["name"].(string); ok {
		m.Name = name
	}
	m.NoIncome = boolField(doc, "noIncome")
	m.NotHousehold = boolField(doc, "notHousehold")
	return m
}

func boolField(doc map[string]any, key string) bool {
	switch v := doc[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
