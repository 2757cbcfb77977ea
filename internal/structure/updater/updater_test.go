package updater

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"belegplan/internal/catalog"
	"belegplan/internal/structure/models"
)

type UpdaterSuite struct {
	suite.Suite
	updater   *Updater
	structure *models.ExtractionStructure
	ctx       context.Context
}

func (s *UpdaterSuite) SetupTest() {
	s.updater = New()
	s.structure = &models.ExtractionStructure{
		ApplicationID: "app-1",
		Persons: map[string]map[string]*models.DocumentExtraction{
			"main_applicant": {
				"lohn_gehaltsbescheinigungen": {
					RelevantValues: []string{"monthlynetsalary"},
					NumberOfFiles:  1,
					Files: map[string]*models.FileExtraction{
						"gehalt.pdf": {
							Values: map[string]*models.ValueRecord{
								"monthlynetsalary": models.NewPlaceholder(catalog.CategoryNetIncome),
							},
						},
					},
				},
			},
		},
	}
	s.ctx = context.Background()
}

func (s *UpdaterSuite) SetupSubTest() {
	s.SetupTest()
}

func TestUpdaterSuite(t *testing.T) {
	suite.Run(t, new(UpdaterSuite))
}

func (s *UpdaterSuite) result() Result {
	return Result{
		PersonKey:      "main_applicant",
		DocumentTypeID: "lohn_gehaltsbescheinigungen",
		FileName:       "gehalt.pdf",
		ValueFieldID:   "monthlynetsalary",
		Extracted: map[string]any{
			"net_value":   "2400.50",
			"confidence":  0.91,
			"method_used": "document_ai",
		},
	}
}

func (s *UpdaterSuite) TestApply() {
	s.Run("writes the value and file metadata", func() {
		applied := s.updater.Apply(s.ctx, s.structure, s.result())
		s.Require().True(applied)

		file := s.structure.Document("main_applicant", "lohn_gehaltsbescheinigungen").Files["gehalt.pdf"]
		s.Equal("2400.50", *file.Values["monthlynetsalary"].NetValue)
		s.InDelta(0.91, file.Confidence, 1e-9)
		s.Equal("document_ai", file.MethodUsed)
		s.Zero(s.structure.SkippedUpdates)
	})

	s.Run("keeps prior file metadata when a result has none", func() {
		s.Require().True(s.updater.Apply(s.ctx, s.structure, s.result()))

		res := s.result()
		res.Extracted = map[string]any{"net_value": "2500.00"}
		s.Require().True(s.updater.Apply(s.ctx, s.structure, res))

		file := s.structure.Document("main_applicant", "lohn_gehaltsbescheinigungen").Files["gehalt.pdf"]
		s.InDelta(0.91, file.Confidence, 1e-9)
		s.Equal("document_ai", file.MethodUsed)
		s.Equal("2500.00", *file.Values["monthlynetsalary"].NetValue)
	})
}

func (s *UpdaterSuite) TestSkips() {
	s.Run("unknown person", func() {
		res := s.result()
		res.PersonKey = "ghost"
		s.False(s.updater.Apply(s.ctx, s.structure, res))
		s.Equal(1, s.structure.SkippedUpdates)
	})

	s.Run("unknown document type", func() {
		res := s.result()
		res.DocumentTypeID = "rentenbescheid"
		s.False(s.updater.Apply(s.ctx, s.structure, res))
		s.Equal(1, s.structure.SkippedUpdates)
	})

	s.Run("unknown file", func() {
		res := s.result()
		res.FileName = "nie_hochgeladen.pdf"
		s.False(s.updater.Apply(s.ctx, s.structure, res))
		s.Equal(1, s.structure.SkippedUpdates)
	})

	s.Run("value not relevant for the document", func() {
		res := s.result()
		res.ValueFieldID = "monthlypension"
		s.False(s.updater.Apply(s.ctx, s.structure, res))
		s.Equal(1, s.structure.SkippedUpdates)
	})

	s.Run("skip leaves existing records untouched", func() {
		res := s.result()
		res.FileName = "nie_hochgeladen.pdf"
		s.False(s.updater.Apply(s.ctx, s.structure, res))

		record := s.structure.Document("main_applicant", "lohn_gehaltsbescheinigungen").Files["gehalt.pdf"].Values["monthlynetsalary"]
		s.Equal("", *record.NetValue)
	})
}

func (s *UpdaterSuite) TestApplyAll() {
	results := []Result{
		s.result(),
		{PersonKey: "ghost", DocumentTypeID: "x", FileName: "y", ValueFieldID: "z"},
	}
	applied, skipped := s.updater.ApplyAll(s.ctx, s.structure, results)
	s.Equal(1, applied)
	s.Equal(1, skipped)
	s.Equal(1, s.structure.SkippedUpdates)
}
