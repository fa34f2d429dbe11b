// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ehogberg/happygit/internal/dates"
	"github.com/ehogberg/happygit/internal/domain"
	"github.com/ehogberg/happygit/internal/gateway"
)

// Aggregator is the use case for measuring repository happiness.
// It orchestrates fetching commit history and averaging the scores.
type Aggregator struct {
	fetcher gateway.Fetcher
	org     string
	repos   []string
	logger  *logrus.Logger
	now     func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock overrides the time source that anchors the reporting windows.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, org string, repos []string, logger *logrus.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher: fetcher,
		org:     org,
		repos:   repos,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// HappinessSince walks the commit history of a single repository from
// the since date onward and averages the happiness scores it finds.
// Commits whose message carries no readable score are skipped; they do
// not count toward the average.
func (a *Aggregator) HappinessSince(ctx context.Context, repo, since string) (domain.RepoHappiness, error) {
	result := domain.RepoHappiness{Since: since}

	var scores []float64
	for commit, err := range a.fetcher.ListCommits(ctx, a.org, repo, since) {
		if err != nil {
			return domain.RepoHappiness{}, fmt.Errorf("failed to fetch commits for %s/%s: %w", a.org, repo, err)
		}

		score, ok := domain.ExtractScore(commit)
		if !ok {
			a.logger.WithFields(logrus.Fields{
				"repo": repo,
				"sha":  commit.SHA,
			}).Debug("commit carries no happiness score")
			continue
		}
		scores = append(scores, float64(score))
	}

	result.Count = len(scores)
	if len(scores) > 0 {
		mean, err := stats.Mean(scores)
		if err != nil {
			return domain.RepoHappiness{}, fmt.Errorf("failed to average scores for %s/%s: %w", a.org, repo, err)
		}
		result.Average = &mean
	}

	return result, nil
}

// OrgHappinessSince measures every configured repository concurrently
// and keys the results by repository name. A failure in any repository
// fails the whole batch.
func (a *Aggregator) OrgHappinessSince(ctx context.Context, since string) (map[string]domain.RepoHappiness, error) {
	a.logger.WithField("since", since).Info("aggregating happiness across repositories")

	results := make([]domain.RepoHappiness, len(a.repos))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, repo := range a.repos {
		eg.Go(func() error {
			var err error
			results[i], err = a.HappinessSince(egCtx, repo, since)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byRepo := make(map[string]domain.RepoHappiness, len(a.repos))
	for i, repo := range a.repos {
		byRepo[repo] = results[i]
	}
	return byRepo, nil
}

// PastWeek reports happiness for commits from the last seven days.
func (a *Aggregator) PastWeek(ctx context.Context) (map[string]domain.RepoHappiness, error) {
	return a.OrgHappinessSince(ctx, dates.DaysAgo(a.now(), 7))
}

// PastMonth reports happiness for commits from the last thirty days.
func (a *Aggregator) PastMonth(ctx context.Context) (map[string]domain.RepoHappiness, error) {
	return a.OrgHappinessSince(ctx, dates.DaysAgo(a.now(), 30))
}

// PastYear reports happiness for commits from the last 365 days.
func (a *Aggregator) PastYear(ctx context.Context) (map[string]domain.RepoHappiness, error) {
	return a.OrgHappinessSince(ctx, dates.DaysAgo(a.now(), 365))
}

// ThisMonth reports happiness for commits since the first of the
// current month.
func (a *Aggregator) ThisMonth(ctx context.Context) (map[string]domain.RepoHappiness, error) {
	since, err := dates.AtBoundary(a.now(), dates.FirstDayOfMonth)
	if err != nil {
		return nil, err
	}
	return a.OrgHappinessSince(ctx, since)
}

// ThisYear reports happiness for commits since the first of January.
func (a *Aggregator) ThisYear(ctx context.Context) (map[string]domain.RepoHappiness, error) {
	since, err := dates.AtBoundary(a.now(), dates.FirstDayOfYear)
	if err != nil {
		return nil, err
	}
	return a.OrgHappinessSince(ctx, since)
}
