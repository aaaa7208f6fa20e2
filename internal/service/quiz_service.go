package service

import (
	"context"
	"errors"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/internal/util"
	"sync/atomic"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const retakeWarning = "You have already taken the quiz for this skill today. Taking it again will overwrite your previous learning journey."

const quotaExceededMessage = "Sorry we are a growing website with low budget implementation hence we are using a free tier AI for this website. " +
	"And so the limit of taking the number of quiz per day is 200. Unfortunately you are the 201th member. " +
	"But I request you to come back tomorrow to try our website again. Thank you <3"

// EligibilityResult can-take-quiz 的响应体
type EligibilityResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// QuizService 资格检查与成绩提交。
// 资格检查是只读的建议性检查：提交路径不会重新校验冷却与配额，
// 并发提交同一 (用户, 技能) 时后写覆盖先写，这是有意保留的原始行为。
type QuizService struct {
	UserRepo      *repository.UserRepository
	UserSkillRepo *repository.UserSkillRepository
	ApiCallRepo   *repository.ApiCallRepository
	Journey       *JourneyService

	dailyQuota atomic.Int64
}

func NewQuizService(
	userRepo *repository.UserRepository,
	userSkillRepo *repository.UserSkillRepository,
	apiCallRepo *repository.ApiCallRepository,
	journey *JourneyService,
	dailyQuota int,
) *QuizService {
	s := &QuizService{
		UserRepo:      userRepo,
		UserSkillRepo: userSkillRepo,
		ApiCallRepo:   apiCallRepo,
		Journey:       journey,
	}
	s.dailyQuota.Store(int64(dailyQuota))
	return s
}

// SetDailyQuota 配置热更新入口
func (s *QuizService) SetDailyQuota(limit int) {
	s.dailyQuota.Store(int64(limit))
}

// CanTakeQuiz 冷却检查（当天同技能已答过）+ 全站每日配额检查
func (s *QuizService) CanTakeQuiz(username, skill string) (EligibilityResult, error) {
	now := time.Now()

	us, err := s.UserSkillRepo.FindByUsernameAndSkill(username, skill)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EligibilityResult{}, err
	}
	if us != nil && us.AttemptedToday(now) {
		return EligibilityResult{Allowed: false, Reason: retakeWarning}, nil
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.ApiCallRepo.CountSince(startOfDay)
	if err != nil {
		return EligibilityResult{}, err
	}
	if count >= s.dailyQuota.Load() {
		return EligibilityResult{Allowed: false, Reason: quotaExceededMessage}, nil
	}

	return EligibilityResult{Allowed: true}, nil
}

// SubmitScore 提交成绩并生成旅程；对 (用户, 技能) 做 upsert，
// 覆盖时重置进度并刷新最后答题日期
func (s *QuizService) SubmitScore(ctx context.Context, username string, score int, skill string) (model.Journey, error) {
	if score < 0 || score > 20 {
		return model.Journey{}, util.ErrScoreOutOfRange
	}

	exists, err := s.UserRepo.Exists(username)
	if err != nil {
		return model.Journey{}, err
	}
	if !exists {
		if err := s.UserRepo.Create(&model.User{Username: username}); err != nil {
			return model.Journey{}, err
		}
	}

	journey := s.Journey.GenerateJourney(ctx, skill, score)
	today := time.Now()
	attemptDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	us, err := s.UserSkillRepo.FindByUsernameAndSkill(username, skill)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Journey{}, err
		}
		us = &model.UserSkill{
			Username:        username,
			Skill:           skill,
			Score:           score,
			LearningJourney: datatypes.NewJSONType(journey),
			Progress:        0,
			LastAttemptDate: attemptDate,
		}
		if err := s.UserSkillRepo.Create(us); err != nil {
			return model.Journey{}, err
		}
		return journey, nil
	}

	us.Score = score
	us.LearningJourney = datatypes.NewJSONType(journey)
	us.Progress = 0
	us.LastAttemptDate = attemptDate
	if err := s.UserSkillRepo.Save(us); err != nil {
		return model.Journey{}, err
	}
	return journey, nil
}
