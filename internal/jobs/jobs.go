package jobs

import (
	"context"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/services"
)

// RolloverJob generates the day's challenges at the day boundary so the
// first app open of the morning finds them ready.
type RolloverJob struct {
	Challenges services.ChallengeService
}

func (j *RolloverJob) Name() string { return "challenge_rollover" }

func (j *RolloverJob) Run(ctx context.Context) error {
	challenges, err := j.Challenges.EnsureTodaysChallenges(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("rollover ensured %d challenges", len(challenges))
	return nil
}

// RetentionJob prunes daily activity records past the retention horizon.
type RetentionJob struct {
	Activity      services.ActivityService
	RetentionDays int
}

func (j *RetentionJob) Name() string { return "activity_retention" }

func (j *RetentionJob) Run(ctx context.Context) error {
	_, err := j.Activity.Cleanup(ctx, j.RetentionDays)
	return err
}
