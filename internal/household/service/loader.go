// Package service loads and normalizes the household an extraction plan is
// computed for.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"belegplan/internal/household/models"
	"belegplan/internal/household/store"
	"belegplan/internal/platform/metrics"
	dErrors "belegplan/pkg/domain-errors"
)

// Loader assembles the list of applicants planning runs over: the main
// applicant (when they claim income) plus every qualifying household member.
type Loader struct {
	roster   store.RosterStore
	profiles store.ProfileStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Loader.
type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

// NewLoader constructs a Loader.
func NewLoader(roster store.RosterStore, profiles store.ProfileStore, opts ...Option) *Loader {
	l := &Loader{roster: roster, profiles: profiles}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadHousehold returns the applicants relevant for planning, in stable
// order: main applicant first, then additional members in roster key order.
// Failing to fetch the roster is fatal; a missing financial sub-record for
// the main applicant degrades to an empty profile so planning can proceed
// for households that have not filled their forms yet.
func (l *Loader) LoadHousehold(ctx context.Context, applicationID string) ([]models.Applicant, error) {
	household, err := l.roster.GetHousehold(ctx, applicationID)
	if err != nil {
		if l.metrics != nil {
			l.metrics.ProfileLoadErrors.Inc()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeProfileLoad, "could not load household")
	}

	applicants := make([]models.Applicant, 0, len(household.Members)+1)

	mainProfile, err := l.getProfile(ctx, household.MainApplicant.ID)
	if err != nil {
		return nil, err
	}
	if mainProfile.ClaimsIncome() {
		applicants = append(applicants, models.Applicant{
			Person: models.Person{
				ID:          models.MainApplicantKey,
				DisplayName: household.MainApplicant.Name,
				Role:        models.RoleMainApplicant,
			},
			Profile: mainProfile,
		})
	}

	members := qualifyingMembers(household.Members)
	profiles := make([]models.FinancialProfile, len(members))
	found := make([]bool, len(members))

	// Independent persons' fetches carry no ordering requirement, so they
	// run concurrently under the request context. Each goroutine writes its
	// own slice index.
	g, gctx := errgroup.WithContext(ctx)
	for i, member := range members {
		g.Go(func() error {
			profile, err := l.profiles.GetProfile(gctx, member.ID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					// Tolerated: the member has not entered financials yet.
					return nil
				}
				return dErrors.Wrap(err, dErrors.CodePersistence, "could not load member profile")
			}
			profiles[i] = profile
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, member := range members {
		if !found[i] {
			if l.logger != nil {
				l.logger.InfoContext(ctx, "household member has no financial record yet",
					"application_id", applicationID,
					"person_id", member.ID,
				)
			}
			continue
		}
		applicants = append(applicants, models.Applicant{
			Person: models.Person{
				ID:          member.ID,
				DisplayName: member.Name,
				Role:        models.RoleAdditionalApplicant,
			},
			Profile: profiles[i],
		})
	}

	return applicants, nil
}

func (l *Loader) getProfile(ctx context.Context, personID string) (models.FinancialProfile, error) {
	profile, err := l.profiles.GetProfile(ctx, personID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.FinancialProfile{}, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodePersistence, "could not load main applicant profile")
	}
	return profile, nil
}

func qualifyingMembers(members []models.Member) []models.Member {
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m.NoIncome || m.NotHousehold {
			continue
		}
		out = append(out, m)
	}
	return out
}
