package service

import (
	"context"
	"encoding/json"
	"fmt"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/pkg/logger"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionCacheTTL        = 5 * time.Minute
	questionsAllCacheKey    = "questions:all"
	availableSkillsCacheKey = "questions:skills"
	questionsSkillKeyPrefix = "questions:skill:"
)

// QuestionRequest 批量导入的单条题目
type QuestionRequest struct {
	Type          string   `json:"type" binding:"required"`
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Skill         string   `json:"skill" binding:"required"`
}

// QuestionResponse options 已解码为字符串数组
type QuestionResponse struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Skill         string   `json:"skill"`
}

// QuestionService 题库读写；列表结果走Redis短缓存（rdb 为 nil 时直连库）
type QuestionService struct {
	Repo  *repository.QuestionRepository
	Redis *redis.Client
}

func NewQuestionService(repo *repository.QuestionRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{Repo: repo, Redis: rdb}
}

func (s *QuestionService) ListBySkill(ctx context.Context, skill string) ([]QuestionResponse, error) {
	cacheKey := questionsSkillKeyPrefix + strings.ToLower(skill)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	questions, err := s.Repo.FindBySkill(skill)
	if err != nil {
		return nil, err
	}

	result := s.decodeQuestions(questions)
	s.toCache(ctx, cacheKey, result)
	return result, nil
}

func (s *QuestionService) ListAll(ctx context.Context) ([]QuestionResponse, error) {
	if cached, ok := s.fromCache(ctx, questionsAllCacheKey); ok {
		return cached, nil
	}

	questions, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	result := s.decodeQuestions(questions)
	s.toCache(ctx, questionsAllCacheKey, result)
	return result, nil
}

// BulkAdd options 序列化为JSON字符串入库，返回成功写入的条数
func (s *QuestionService) BulkAdd(ctx context.Context, reqs []QuestionRequest) (int, error) {
	questions := make([]model.Question, 0, len(reqs))
	for _, req := range reqs {
		optionsJSON, err := json.Marshal(req.Options)
		if err != nil {
			return 0, err
		}
		questions = append(questions, model.Question{
			Type:          req.Type,
			Question:      req.Question,
			Options:       string(optionsJSON),
			CorrectAnswer: req.CorrectAnswer,
			Skill:         req.Skill,
		})
	}

	if err := s.Repo.CreateBatch(questions); err != nil {
		return 0, err
	}

	s.invalidate(ctx, reqs)
	return len(questions), nil
}

func (s *QuestionService) AvailableSkills(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, availableSkillsCacheKey).Result(); err == nil {
			var skills []string
			if json.Unmarshal([]byte(val), &skills) == nil {
				return skills, nil
			}
		}
	}

	skills, err := s.Repo.DistinctSkills()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(skills); err == nil {
			s.Redis.Set(ctx, availableSkillsCacheKey, data, questionCacheTTL)
		}
	}
	return skills, nil
}

// decodeQuestions options 解析失败的行跳过并告警，不中断整个列表
func (s *QuestionService) decodeQuestions(questions []model.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var options []string
		if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
			logger.Log.Warn("Skipping question with unparseable options",
				zap.Uint("id", q.ID),
				zap.String("options", q.Options),
				zap.Error(err))
			continue
		}
		result = append(result, QuestionResponse{
			Type:          q.Type,
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Skill:         q.Skill,
		})
	}
	return result
}

func (s *QuestionService) fromCache(ctx context.Context, key string) ([]QuestionResponse, bool) {
	if s.Redis == nil {
		return nil, false
	}
	val, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var result []QuestionResponse
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *QuestionService) toCache(ctx context.Context, key string, result []QuestionResponse) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, key, data, questionCacheTTL)
}

func (s *QuestionService) invalidate(ctx context.Context, reqs []QuestionRequest) {
	if s.Redis == nil {
		return
	}
	keys := []string{questionsAllCacheKey, availableSkillsCacheKey}
	seen := make(map[string]bool)
	for _, req := range reqs {
		key := questionsSkillKeyPrefix + strings.ToLower(req.Skill)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn(fmt.Sprintf("Failed to invalidate %d question cache keys", len(keys)), zap.Error(err))
	}
}
