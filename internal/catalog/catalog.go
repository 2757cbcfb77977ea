// Package catalog holds the value/document rule table: the declarative
// catalogue of extractable financial facts, the document types that can
// supply them, and the presence predicates gating each entry. The catalog is
// constructed once at startup and injected; the resolver and consolidator
// never invent mappings of their own.
package catalog

import (
	"fmt"

	dErrors "belegplan/pkg/domain-errors"
)

// DataType classifies the scalar shape of a value field.
type DataType string

const (
	TypeCurrency DataType = "currency"
	TypeNumber   DataType = "number"
	TypeDate     DataType = "date"
	TypeText     DataType = "text"
	TypeBoolean  DataType = "boolean"
)

// CalcMethod states how a declared value is normalized downstream.
type CalcMethod string

const (
	CalcMonthly CalcMethod = "monthly"
	CalcYearly  CalcMethod = "yearly"
	CalcDaily   CalcMethod = "daily"
	CalcNone    CalcMethod = "none"
)

// CalcType names the downstream computation a fact feeds. Table entries are
// single-valued; CalcBoth only ever appears after consolidation.
type CalcType string

const (
	CalcHouseholdIncome        CalcType = "household_income"
	CalcAvailableMonthlyIncome CalcType = "available_monthly_income"
	CalcBoth                   CalcType = "both"
)

// FieldCategory fixes the persisted value-record shape for a field. The
// extraction structure derives its placeholder from this tag, never from the
// data an extractor happens to return.
type FieldCategory string

const (
	CategoryGrossIncome FieldCategory = "gross_income"
	CategoryNetIncome   FieldCategory = "net_income"
	CategoryObligation  FieldCategory = "obligation"
	CategoryCalendar    FieldCategory = "calendar"
	CategoryGeneric     FieldCategory = "generic"
)

// ValueField is the abstract definition of one extractable fact. Its ID
// matches the financial profile field holding the declared value.
type ValueField struct {
	ID         string        `yaml:"id"`
	Label      string        `yaml:"label"`
	DataType   DataType      `yaml:"data_type"`
	IsArray    bool          `yaml:"is_array"`
	CalcMethod CalcMethod    `yaml:"calc_method"`
	Category   FieldCategory `yaml:"category"`
}

// DocumentType is a category of supporting document a person may upload.
type DocumentType struct {
	ID               string `yaml:"id"`
	Title            string `yaml:"title"`
	Category         string `yaml:"category"`
	SupportsMultiple bool   `yaml:"supports_multiple"`
}

// Mapping is one edge in the many-to-many rule graph. An empty DocumentTypeID
// marks a fact no document can corroborate; such entries are excluded from
// automated planning and surfaced for manual review.
//
// The presence predicate for a mapping is: GateFlag (when set) is true on the
// profile, and the profile field named by ValueFieldID passes hasValue (or
// hasArrayValue for array fields).
type Mapping struct {
	ValueFieldID   string   `yaml:"value_field"`
	DocumentTypeID string   `yaml:"document_type,omitempty"`
	CalcType       CalcType `yaml:"calc_type"`
	GateFlag       string   `yaml:"gate_flag,omitempty"`
	SearchTerms    []string `yaml:"search_terms,omitempty"`
	// Required is reserved: it is carried through planning output but nothing
	// orders or gates on it yet.
	Required bool `yaml:"required,omitempty"`
}

// Catalog is the validated, immutable rule table.
type Catalog struct {
	fields   map[string]ValueField
	docs     map[string]DocumentType
	mappings []Mapping
}

// New builds a catalog from its parts and enforces the table-authoring
// invariants.
func New(fields []ValueField, docs []DocumentType, mappings []Mapping) (*Catalog, error) {
	c := &Catalog{
		fields:   make(map[string]ValueField, len(fields)),
		docs:     make(map[string]DocumentType, len(docs)),
		mappings: mappings,
	}
	for _, f := range fields {
		if _, exists := c.fields[f.ID]; exists {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "duplicate value field %q", f.ID)
		}
		c.fields[f.ID] = f
	}
	for _, d := range docs {
		if _, exists := c.docs[d.ID]; exists {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "duplicate document type %q", d.ID)
		}
		c.docs[d.ID] = d
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	type tripleKey struct {
		field, doc string
		calc       CalcType
	}
	seen := make(map[tripleKey]struct{}, len(c.mappings))

	for _, m := range c.mappings {
		if _, ok := c.fields[m.ValueFieldID]; !ok {
			return dErrors.Newf(dErrors.CodeInvariantViolation,
				"mapping references unknown value field %q", m.ValueFieldID)
		}
		if m.DocumentTypeID != "" {
			if _, ok := c.docs[m.DocumentTypeID]; !ok {
				return dErrors.Newf(dErrors.CodeInvariantViolation,
					"mapping %q references unknown document type %q", m.ValueFieldID, m.DocumentTypeID)
			}
			if len(m.SearchTerms) == 0 {
				return dErrors.Newf(dErrors.CodeInvariantViolation,
					"mapping %q/%q has no search terms", m.ValueFieldID, m.DocumentTypeID)
			}
		}
		if m.CalcType != CalcHouseholdIncome && m.CalcType != CalcAvailableMonthlyIncome {
			// CalcBoth is a consolidation result, never a table value.
			return dErrors.Newf(dErrors.CodeInvariantViolation,
				"mapping %q/%q has invalid calc type %q", m.ValueFieldID, m.DocumentTypeID, m.CalcType)
		}
		key := tripleKey{field: m.ValueFieldID, doc: m.DocumentTypeID, calc: m.CalcType}
		if _, dup := seen[key]; dup {
			return dErrors.Newf(dErrors.CodeInvariantViolation,
				"duplicate mapping (%s, %s, %s)", m.ValueFieldID, m.DocumentTypeID, m.CalcType)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Mappings returns all table entries in authoring order.
func (c *Catalog) Mappings() []Mapping {
	return c.mappings
}

// MappingsFor returns the table entries for one calculation purpose, in
// authoring order.
func (c *Catalog) MappingsFor(calc CalcType) []Mapping {
	out := make([]Mapping, 0, len(c.mappings))
	for _, m := range c.mappings {
		if m.CalcType == calc {
			out = append(out, m)
		}
	}
	return out
}

// Field looks up a value field definition by id.
func (c *Catalog) Field(id string) (ValueField, bool) {
	f, ok := c.fields[id]
	return f, ok
}

// Document looks up a document type by id.
func (c *Catalog) Document(id string) (DocumentType, bool) {
	d, ok := c.docs[id]
	return d, ok
}

// DocumentTitle resolves the display title for a document type, falling back
// to the id when the type is unknown.
func (c *Catalog) DocumentTitle(id string) string {
	if d, ok := c.docs[id]; ok {
		return d.Title
	}
	return id
}

// CategoryOf returns the value-record category declared for a field,
// defaulting to the generic shape for fields the table does not know.
func (c *Catalog) CategoryOf(valueFieldID string) FieldCategory {
	if f, ok := c.fields[valueFieldID]; ok && f.Category != "" {
		return f.Category
	}
	return CategoryGeneric
}

// MustDefault returns the built-in table and panics when it fails its own
// validation; reaching the panic means the built-in table itself is broken.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return c
}
