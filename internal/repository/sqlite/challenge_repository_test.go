package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mvilela/lumo/internal/db"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
	"github.com/mvilela/lumo/internal/repository/sqlite"
	"github.com/mvilela/lumo/internal/testutil"
)

type ChallengeRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.ChallengeRepository
}

func (s *ChallengeRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewChallengeRepository(s.db.DB)
}

func (s *ChallengeRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

var challengeDay = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func (s *ChallengeRepositorySuite) newChallenge(typ models.ChallengeType, date time.Time) models.DailyChallenge {
	return models.DailyChallenge{
		Type:        typ,
		Title:       "Word Explorer",
		Description: "Review 10 vocabulary items",
		Requirement: 10,
		XPReward:    50,
		Date:        date,
	}
}

func (s *ChallengeRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	ch := s.newChallenge(models.ChallengeVocabulary, challengeDay)
	ch.Quote = "Slow and steady wins the race."
	ch.QuoteAuthor = "Aesop"

	id, err := s.repo.Insert(ctx, ch)
	s.Require().NoError(err)
	s.Require().Positive(id)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(models.ChallengeVocabulary, got.Type)
	s.Equal("Word Explorer", got.Title)
	s.Equal("Aesop", got.QuoteAuthor)
	s.Equal(10, got.Requirement)
	s.Equal(0, got.Progress)
	s.False(got.IsCompleted)
	s.Nil(got.CompletedAt)
	s.Equal("2025-06-15", got.Date.Format("2006-01-02"))
}

func (s *ChallengeRepositorySuite) TestGet_NotFound() {
	got, err := s.repo.Get(context.Background(), 404)
	s.NoError(err)
	s.Nil(got)
}

func (s *ChallengeRepositorySuite) TestForDate() {
	ctx := context.Background()
	yesterday := challengeDay.AddDate(0, 0, -1)

	_, err := s.repo.Insert(ctx, s.newChallenge(models.ChallengeVocabulary, challengeDay))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newChallenge(models.ChallengeStreak, challengeDay))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newChallenge(models.ChallengeJournaling, yesterday))
	s.Require().NoError(err)

	today, err := s.repo.ForDate(ctx, challengeDay)
	s.Require().NoError(err)
	s.Require().Len(today, 2)
	s.Equal(models.ChallengeVocabulary, today[0].Type)
	s.Equal(models.ChallengeStreak, today[1].Type)

	before, err := s.repo.ForDate(ctx, yesterday)
	s.Require().NoError(err)
	s.Len(before, 1)

	empty, err := s.repo.ForDate(ctx, challengeDay.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *ChallengeRepositorySuite) TestUpdate_Completion() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, s.newChallenge(models.ChallengeVocabulary, challengeDay))
	s.Require().NoError(err)

	ch, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	completedAt := challengeDay.Add(14 * time.Hour)
	ch.Progress = 10
	ch.IsCompleted = true
	ch.CompletedAt = &completedAt
	s.Require().NoError(s.repo.Update(ctx, *ch))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(10, got.Progress)
	s.True(got.IsCompleted)
	s.Require().NotNil(got.CompletedAt)
	s.True(got.CompletedAt.Equal(completedAt))
}

func (s *ChallengeRepositorySuite) TestCountCompleted() {
	ctx := context.Background()

	n, err := s.repo.CountCompleted(ctx)
	s.Require().NoError(err)
	s.Zero(n)

	doneID, err := s.repo.Insert(ctx, s.newChallenge(models.ChallengeVocabulary, challengeDay))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newChallenge(models.ChallengeStreak, challengeDay))
	s.Require().NoError(err)

	done, err := s.repo.Get(ctx, doneID)
	s.Require().NoError(err)
	done.Progress = done.Requirement
	done.IsCompleted = true
	s.Require().NoError(s.repo.Update(ctx, *done))

	n, err = s.repo.CountCompleted(ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func TestChallengeRepositorySuite(t *testing.T) {
	suite.Run(t, new(ChallengeRepositorySuite))
}
