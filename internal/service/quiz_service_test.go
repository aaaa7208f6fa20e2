package service

import (
	"context"
	"errors"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newQuizService(t *testing.T, db *gorm.DB, gen TextGenerator, quota int) *QuizService {
	t.Helper()
	apiCallRepo := repository.NewApiCallRepository(db)
	journey := NewJourneyService(gen, apiCallRepo)
	return NewQuizService(
		repository.NewUserRepository(db),
		repository.NewUserSkillRepository(db),
		apiCallRepo,
		journey,
		quota,
	)
}

func todayDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func TestCanTakeQuizDeniesSameDayRetakeCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	require.NoError(t, db.Create(&model.UserSkill{
		Username:        "alice",
		Skill:           "python",
		Score:           12,
		LastAttemptDate: todayDate(),
	}).Error)

	result, err := svc.CanTakeQuiz("ALICE", "PYTHON")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, retakeWarning, result.Reason)
}

func TestCanTakeQuizAllowsOnNewDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	require.NoError(t, db.Create(&model.UserSkill{
		Username:        "alice",
		Skill:           "python",
		Score:           12,
		LastAttemptDate: todayDate().AddDate(0, 0, -1),
	}).Error)

	result, err := svc.CanTakeQuiz("alice", "python")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Empty(t, result.Reason)
}

func TestCanTakeQuizDeniesWhenQuotaExhausted(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	calls := make([]model.ApiCall, 200)
	for i := range calls {
		calls[i] = model.ApiCall{Timestamp: time.Now()}
	}
	require.NoError(t, db.Create(&calls).Error)

	result, err := svc.CanTakeQuiz("bob", "rust")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, quotaExceededMessage, result.Reason)
}

func TestCanTakeQuizIgnoresYesterdaysApiCalls(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 1)

	require.NoError(t, db.Create(&model.ApiCall{Timestamp: time.Now().AddDate(0, 0, -1)}).Error)

	result, err := svc.CanTakeQuiz("bob", "rust")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestSubmitScoreCreatesUserAndSkill(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	journey, err := svc.SubmitScore(context.Background(), "carol", 7, "go")
	require.NoError(t, err)
	assert.Equal(t, model.LevelBeginner, journey.Level)
	assert.Len(t, journey.Chapters, model.JourneyChapterCount)

	var user model.User
	require.NoError(t, db.Where("username = ?", "carol").First(&user).Error)

	us, err := repository.NewUserSkillRepository(db).FindByUsernameAndSkill("carol", "go")
	require.NoError(t, err)
	assert.Equal(t, 7, us.Score)
	assert.Zero(t, us.Progress)
	assert.True(t, us.AttemptedToday(time.Now()))
	assert.Len(t, us.Journey().Chapters, model.JourneyChapterCount)
}

func TestSubmitScoreUpsertReplacesExistingRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	old := model.Journey{Level: model.LevelBeginner, Chapters: make([]model.Chapter, model.JourneyChapterCount)}
	old.Chapters[0].Completed = true
	require.NoError(t, db.Create(&model.User{Username: "dave"}).Error)
	require.NoError(t, db.Create(&model.UserSkill{
		Username:        "dave",
		Skill:           "python",
		Score:           5,
		LearningJourney: datatypes.NewJSONType(old),
		Progress:        10,
		LastAttemptDate: todayDate().AddDate(0, 0, -3),
	}).Error)

	journey, err := svc.SubmitScore(context.Background(), "dave", 18, "python")
	require.NoError(t, err)
	assert.Equal(t, model.LevelAdvanced, journey.Level)

	us, err := repository.NewUserSkillRepository(db).FindByUsernameAndSkill("dave", "python")
	require.NoError(t, err)
	assert.Equal(t, 18, us.Score)
	assert.Zero(t, us.Progress, "progress resets on resubmission")
	assert.True(t, us.AttemptedToday(time.Now()))
	assert.Equal(t, model.LevelAdvanced, us.Journey().Level)
	assert.False(t, us.Journey().Chapters[0].Completed)

	// upsert 不产生第二条记录
	var count int64
	require.NoError(t, db.Model(&model.UserSkill{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitScoreDoesNotDuplicateExistingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	require.NoError(t, db.Create(&model.User{Username: "Erin"}).Error)

	_, err := svc.SubmitScore(context.Background(), "erin", 9, "sql")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitScoreRejectsOutOfRangeScore(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)

	_, err := svc.SubmitScore(context.Background(), "frank", 21, "go")
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = svc.SubmitScore(context.Background(), "frank", -1, "go")
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)
}

func TestSetDailyQuota(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 1)

	require.NoError(t, db.Create(&model.ApiCall{Timestamp: time.Now()}).Error)

	result, err := svc.CanTakeQuiz("gina", "go")
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	svc.SetDailyQuota(10)

	result, err = svc.CanTakeQuiz("gina", "go")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
