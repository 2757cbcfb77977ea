package catalog

// The built-in rule table. Field ids and gate flags mirror the financial
// profile contract shared with the forms subsystem, including its historical
// naming inconsistencies (hasSalaryIncome vs hasbusinessincome); renaming
// them here would break the coupling the planner depends on.

func defaultValueFields() []ValueField {
	return []ValueField{
		// Salary
		{ID: "monthlynetsalary", Label: "Monatliches Nettogehalt", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},
		{ID: "monthlygrosssalary", Label: "Monatliches Bruttogehalt", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryGrossIncome},
		{ID: "wheinachtsgeld_last12", Label: "Weihnachtsgeld (letzte 12 Monate)", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryGrossIncome},
		{ID: "urlaubsgeld_last12", Label: "Urlaubsgeld (letzte 12 Monate)", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryGrossIncome},
		{ID: "prior_year_earning", Label: "Bruttoeinkommen Vorjahr", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryGrossIncome},
		{ID: "prior_year", Label: "Vorjahr", DataType: TypeDate, CalcMethod: CalcNone, Category: CategoryCalendar},

		// Self-employment
		{ID: "businessnetincome", Label: "Gewinn aus selbständiger Tätigkeit", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryNetIncome},
		{ID: "business_prior_profit", Label: "Gewinn Vorjahr", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryGrossIncome},

		// Pension
		{ID: "monthlypension", Label: "Monatliche Rente", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},
		{ID: "pension_start_date", Label: "Rentenbeginn", DataType: TypeDate, CalcMethod: CalcNone, Category: CategoryCalendar},

		// Unemployment benefit
		{ID: "monthly_alg", Label: "Arbeitslosengeld monatlich", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},
		{ID: "alg_laufzeit", Label: "Bewilligungszeitraum ALG", DataType: TypeText, CalcMethod: CalcNone, Category: CategoryGeneric},

		// Parental benefit
		{ID: "monthly_elterngeld", Label: "Elterngeld monatlich", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},

		// Child benefit
		{ID: "monthly_kindergeld", Label: "Kindergeld monatlich", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},

		// Sickness benefit
		{ID: "monthly_krankengeld", Label: "Krankengeld monatlich", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},
		{ID: "krankengeld_laufzeit", Label: "Bezugszeitraum Krankengeld", DataType: TypeText, CalcMethod: CalcNone, Category: CategoryGeneric},

		// Maintenance received
		{ID: "monthly_unterhalt", Label: "Unterhalt monatlich", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryNetIncome},

		// Rental and capital income
		{ID: "rentalincomes", Label: "Mieteinnahmen", DataType: TypeCurrency, IsArray: true, CalcMethod: CalcMonthly, Category: CategoryGrossIncome},
		{ID: "yearly_capital_income", Label: "Kapitalerträge pro Jahr", DataType: TypeCurrency, CalcMethod: CalcYearly, Category: CategoryGrossIncome},

		// Mini job
		{ID: "monthly_minijob_income", Label: "Einkommen aus Minijob", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryGrossIncome},

		// Obligations and deductibles
		{ID: "loanpayments", Label: "Kreditraten", DataType: TypeCurrency, IsArray: true, CalcMethod: CalcMonthly, Category: CategoryObligation},
		{ID: "insurancepremiums", Label: "Versicherungsbeiträge", DataType: TypeCurrency, IsArray: true, CalcMethod: CalcMonthly, Category: CategoryObligation},
		{ID: "monthly_rent_expense", Label: "Monatliche Miete", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryObligation},
		{ID: "maintenance_paid", Label: "Gezahlter Unterhalt", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryObligation},

		// Declared but not corroborated by any document type
		{ID: "other_income_description", Label: "Sonstige Einkünfte (Beschreibung)", DataType: TypeText, CalcMethod: CalcNone, Category: CategoryGeneric},
		{ID: "cash_income_estimate", Label: "Geschätzte Bareinnahmen", DataType: TypeCurrency, CalcMethod: CalcMonthly, Category: CategoryGeneric},
	}
}

func defaultDocumentTypes() []DocumentType {
	return []DocumentType{
		{ID: "lohn_gehaltsbescheinigungen", Title: "Lohn-/Gehaltsbescheinigungen", Category: "income", SupportsMultiple: true},
		{ID: "einkommensteuerbescheid", Title: "Einkommensteuerbescheid", Category: "tax"},
		{ID: "bwa", Title: "Betriebswirtschaftliche Auswertung", Category: "business", SupportsMultiple: true},
		{ID: "rentenbescheid", Title: "Rentenbescheid", Category: "benefit"},
		{ID: "arbeitslosengeldbescheid", Title: "Arbeitslosengeldbescheid", Category: "benefit"},
		{ID: "elterngeldbescheid", Title: "Elterngeldbescheid", Category: "benefit"},
		{ID: "kindergeldbescheid", Title: "Kindergeldbescheid", Category: "benefit"},
		{ID: "krankengeldbescheid", Title: "Krankengeldbescheid", Category: "benefit"},
		{ID: "unterhaltsnachweis", Title: "Unterhaltsnachweis", Category: "maintenance", SupportsMultiple: true},
		{ID: "mietvertrag", Title: "Mietvertrag", Category: "housing", SupportsMultiple: true},
		{ID: "jahressteuerbescheinigung", Title: "Jahressteuerbescheinigung", Category: "capital"},
		{ID: "darlehensvertrag", Title: "Darlehensvertrag", Category: "obligation", SupportsMultiple: true},
		{ID: "versicherungsschein", Title: "Versicherungsschein", Category: "obligation", SupportsMultiple: true},
		{ID: "kontoauszug", Title: "Kontoauszug", Category: "bank", SupportsMultiple: true},
	}
}

func defaultMappings() []Mapping {
	return []Mapping{
		// Salary: payslips carry both gross and net figures.
		{ValueFieldID: "monthlynetsalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "hasSalaryIncome",
			SearchTerms: []string{"Nettoverdienst", "Netto"}},
		{ValueFieldID: "monthlynetsalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasSalaryIncome",
			SearchTerms: []string{"Netto", "Auszahlungsbetrag"}},
		{ValueFieldID: "monthlygrosssalary", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "hasSalaryIncome",
			SearchTerms: []string{"Bruttoverdienst", "Gesamtbrutto"}},
		{ValueFieldID: "wheinachtsgeld_last12", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "hasSalaryIncome",
			SearchTerms: []string{"Weihnachtsgeld", "Sonderzahlung"}},
		{ValueFieldID: "urlaubsgeld_last12", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "hasSalaryIncome",
			SearchTerms: []string{"Urlaubsgeld"}},

		// Regular earners must corroborate the prior calendar year.
		{ValueFieldID: "prior_year_earning", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "isEarningRegularIncome",
			SearchTerms: []string{"Jahresbrutto", "Gesamtbrutto Jahr"}},
		{ValueFieldID: "prior_year_earning", DocumentTypeID: "einkommensteuerbescheid", CalcType: CalcHouseholdIncome, GateFlag: "isEarningRegularIncome",
			SearchTerms: []string{"Gesamtbetrag der Einkünfte", "zu versteuerndes Einkommen"}},
		{ValueFieldID: "prior_year", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "isEarningRegularIncome",
			SearchTerms: []string{"Abrechnungsjahr", "Jahr"}},

		// Self-employment
		{ValueFieldID: "businessnetincome", DocumentTypeID: "einkommensteuerbescheid", CalcType: CalcHouseholdIncome, GateFlag: "hasbusinessincome",
			SearchTerms: []string{"Einkünfte aus Gewerbebetrieb", "Einkünfte aus selbständiger Arbeit"}},
		{ValueFieldID: "businessnetincome", DocumentTypeID: "bwa", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasbusinessincome",
			SearchTerms: []string{"Betriebsergebnis", "vorläufiges Ergebnis"}},
		{ValueFieldID: "business_prior_profit", DocumentTypeID: "einkommensteuerbescheid", CalcType: CalcHouseholdIncome, GateFlag: "hasbusinessincome",
			SearchTerms: []string{"Gewinn", "Einkünfte"}},

		// Pension
		{ValueFieldID: "monthlypension", DocumentTypeID: "rentenbescheid", CalcType: CalcHouseholdIncome, GateFlag: "haspensionincome",
			SearchTerms: []string{"Rentenhöhe", "monatlicher Zahlbetrag"}},
		{ValueFieldID: "monthlypension", DocumentTypeID: "rentenbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haspensionincome",
			SearchTerms: []string{"Zahlbetrag", "Rentenhöhe"}},
		{ValueFieldID: "pension_start_date", DocumentTypeID: "rentenbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haspensionincome",
			SearchTerms: []string{"Rentenbeginn"}},

		// Unemployment benefit
		{ValueFieldID: "monthly_alg", DocumentTypeID: "arbeitslosengeldbescheid", CalcType: CalcHouseholdIncome, GateFlag: "hasunemploymentbenefit",
			SearchTerms: []string{"Leistungsbetrag", "täglicher Leistungssatz"}},
		{ValueFieldID: "monthly_alg", DocumentTypeID: "arbeitslosengeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasunemploymentbenefit",
			SearchTerms: []string{"Leistungsbetrag"}},
		{ValueFieldID: "alg_laufzeit", DocumentTypeID: "arbeitslosengeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasunemploymentbenefit",
			SearchTerms: []string{"Anspruchsdauer", "Bewilligungszeitraum"}},

		// Parental benefit
		{ValueFieldID: "monthly_elterngeld", DocumentTypeID: "elterngeldbescheid", CalcType: CalcHouseholdIncome, GateFlag: "haselterngeld",
			SearchTerms: []string{"Elterngeld monatlich"}},
		{ValueFieldID: "monthly_elterngeld", DocumentTypeID: "elterngeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haselterngeld",
			SearchTerms: []string{"Elterngeld monatlich", "Bemessungsentgelt"}},

		// Child benefit counts toward disposable income only.
		{ValueFieldID: "monthly_kindergeld", DocumentTypeID: "kindergeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haskindergeld",
			SearchTerms: []string{"Kindergeld", "Zahlbetrag"}},

		// Sickness benefit
		{ValueFieldID: "monthly_krankengeld", DocumentTypeID: "krankengeldbescheid", CalcType: CalcHouseholdIncome, GateFlag: "haskrankengeld",
			SearchTerms: []string{"Krankengeld", "kalendertäglich"}},
		{ValueFieldID: "monthly_krankengeld", DocumentTypeID: "krankengeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haskrankengeld",
			SearchTerms: []string{"Krankengeld"}},
		{ValueFieldID: "krankengeld_laufzeit", DocumentTypeID: "krankengeldbescheid", CalcType: CalcAvailableMonthlyIncome, GateFlag: "haskrankengeld",
			SearchTerms: []string{"Bezugszeitraum"}},

		// Maintenance received
		{ValueFieldID: "monthly_unterhalt", DocumentTypeID: "unterhaltsnachweis", CalcType: CalcHouseholdIncome, GateFlag: "hasmaintenanceincome",
			SearchTerms: []string{"Unterhalt", "monatlicher Betrag"}},
		{ValueFieldID: "monthly_unterhalt", DocumentTypeID: "unterhaltsnachweis", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasmaintenanceincome",
			SearchTerms: []string{"Unterhalt"}},

		// Rental income: line items, one per let property.
		{ValueFieldID: "rentalincomes", DocumentTypeID: "mietvertrag", CalcType: CalcHouseholdIncome, GateFlag: "hasrentalincome",
			SearchTerms: []string{"Kaltmiete", "Miete"}},
		{ValueFieldID: "rentalincomes", DocumentTypeID: "mietvertrag", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasrentalincome",
			SearchTerms: []string{"Miete", "Nebenkosten"}},

		// Capital income
		{ValueFieldID: "yearly_capital_income", DocumentTypeID: "jahressteuerbescheinigung", CalcType: CalcHouseholdIncome, GateFlag: "hascapitalincome",
			SearchTerms: []string{"Kapitalerträge", "Zinserträge"}},

		// Mini job
		{ValueFieldID: "monthly_minijob_income", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcHouseholdIncome, GateFlag: "hasminijob",
			SearchTerms: []string{"Minijob", "geringfügige Beschäftigung"}},
		{ValueFieldID: "monthly_minijob_income", DocumentTypeID: "lohn_gehaltsbescheinigungen", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasminijob",
			SearchTerms: []string{"geringfügige Beschäftigung", "Verdienst"}},

		// Obligations reduce disposable income; they never feed the gross
		// household figure.
		{ValueFieldID: "loanpayments", DocumentTypeID: "darlehensvertrag", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasdebtobligations",
			SearchTerms: []string{"Darlehen", "monatliche Rate", "Ratenhöhe"}},
		{ValueFieldID: "loanpayments", DocumentTypeID: "kontoauszug", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasdebtobligations",
			SearchTerms: []string{"Lastschrift", "Rate"}},
		{ValueFieldID: "insurancepremiums", DocumentTypeID: "versicherungsschein", CalcType: CalcAvailableMonthlyIncome, GateFlag: "hasinsurancepremiums",
			SearchTerms: []string{"Versicherungsbeitrag", "Prämie"}},
		{ValueFieldID: "monthly_rent_expense", DocumentTypeID: "mietvertrag", CalcType: CalcAvailableMonthlyIncome,
			SearchTerms: []string{"Gesamtmiete", "Warmmiete"}},
		{ValueFieldID: "maintenance_paid", DocumentTypeID: "unterhaltsnachweis", CalcType: CalcAvailableMonthlyIncome, GateFlag: "paysmaintenance",
			SearchTerms: []string{"Unterhaltszahlung"}},

		// Declared facts with no corroborating document type; planning skips
		// them and the review workflow picks them up.
		{ValueFieldID: "other_income_description", CalcType: CalcHouseholdIncome},
		{ValueFieldID: "cash_income_estimate", CalcType: CalcHouseholdIncome},
		{ValueFieldID: "cash_income_estimate", CalcType: CalcAvailableMonthlyIncome},
	}
}

// Default builds the built-in rule table.
func Default() (*Catalog, error) {
	return New(defaultValueFields(), defaultDocumentTypes(), defaultMappings())
}
