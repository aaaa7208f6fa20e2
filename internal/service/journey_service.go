package service

import (
	"context"
	"encoding/json"
	"fmt"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/pkg/logger"
	"skill_quiz_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JourneyService 生成学习旅程：优先走外部生成，失败时走确定性兜底，
// 调用方永远拿到合法的10章旅程
type JourneyService struct {
	Generator   TextGenerator
	ApiCallRepo *repository.ApiCallRepository
}

func NewJourneyService(generator TextGenerator, apiCallRepo *repository.ApiCallRepository) *JourneyService {
	return &JourneyService{
		Generator:   generator,
		ApiCallRepo: apiCallRepo,
	}
}

// LevelForScore 由分数确定等级，与外部生成是否成功无关
func LevelForScore(score int) string {
	switch {
	case score <= 10:
		return model.LevelBeginner
	case score <= 15:
		return model.LevelIntermediate
	default:
		return model.LevelAdvanced
	}
}

// GenerateJourney 不会失败；只有成功走通外部路径才记一条 api_calls
func (s *JourneyService) GenerateJourney(ctx context.Context, skill string, score int) model.Journey {
	level := LevelForScore(score)

	journey, err := s.generateExternal(ctx, skill, score, level)
	if err != nil {
		logger.Log.Warn("External journey generation failed, using fallback",
			zap.String("skill", skill),
			zap.Int("score", score),
			zap.Error(err))
		monitoring.JourneyGenerations.WithLabelValues("fallback").Inc()
		return s.fallbackJourney(skill, level)
	}

	monitoring.JourneyGenerations.WithLabelValues("success").Inc()
	return journey
}

func (s *JourneyService) generateExternal(ctx context.Context, skill string, score int, level string) (model.Journey, error) {
	raw, err := s.Generator.Generate(ctx, buildJourneyPrompt(skill, score))
	if err != nil {
		return model.Journey{}, err
	}

	var journey model.Journey
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &journey); err != nil {
		return model.Journey{}, fmt.Errorf("unparseable journey payload: %w", err)
	}

	// 等级以本地推导为准，completed 一律不信任外部响应
	journey.Level = level
	for i := range journey.Chapters {
		journey.Chapters[i].Completed = false
	}

	if err := journey.Validate(); err != nil {
		return model.Journey{}, err
	}

	if err := s.ApiCallRepo.Create(&model.ApiCall{Timestamp: time.Now()}); err != nil {
		return model.Journey{}, fmt.Errorf("record api call: %w", err)
	}

	return journey, nil
}

func buildJourneyPrompt(skill string, score int) string {
	return fmt.Sprintf(
		"Create a personalized learning journey for a %s learner with a quiz score of %d out of 20. "+
			"Based on this score, determine their skill level (Beginner: 0-10, Intermediate: 11-15, Advanced: 16-20) "+
			"and create a 10-chapter learning journey tailored to their level. "+
			"Each chapter should include: a chapter number, a title, a brief description of the content, "+
			"specific topics to cover, online resources (with URLs) for learning, and a summary of key takeaways. "+
			"Return the response in JSON format with 'level' (string) and 'chapters' (list of 10 chapters, each with "+
			"'chapter', 'title', 'description', 'topics', 'resources', and 'summary').",
		skill, score)
}

// stripCodeFence 模型经常把JSON包在 ```json 围栏里
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func (s *JourneyService) fallbackJourney(skill, level string) model.Journey {
	chapters := make([]model.Chapter, model.JourneyChapterCount)
	for i := range chapters {
		chapters[i] = model.Chapter{
			Chapter:     i + 1,
			Title:       fmt.Sprintf("%s Chapter %d", skill, i+1),
			Description: fmt.Sprintf("Learn key concepts of %s.", skill),
			Topics:      []string{"Basics"},
			Resources:   []string{"https://example.com"},
			Summary:     "Key takeaways.",
			Completed:   false,
		}
	}
	return model.Journey{
		Level:    level,
		Chapters: chapters,
	}
}
