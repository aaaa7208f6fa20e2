package service

import (
	"context"
	"errors"
	"fmt"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{0, model.LevelBeginner},
		{5, model.LevelBeginner},
		{10, model.LevelBeginner},
		{11, model.LevelIntermediate},
		{13, model.LevelIntermediate},
		{15, model.LevelIntermediate},
		{16, model.LevelAdvanced},
		{20, model.LevelAdvanced},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("score_%d", tc.score), func(t *testing.T) {
			assert.Equal(t, tc.level, LevelForScore(tc.score))
		})
	}
}

func TestGenerateJourneySuccess(t *testing.T) {
	db := setupTestDB(t)
	apiCallRepo := repository.NewApiCallRepository(db)

	// 外部响应故意给错等级，本地推导必须覆盖它
	gen := &stubGenerator{response: validJourneyJSON(t, model.LevelAdvanced, 10)}
	svc := NewJourneyService(gen, apiCallRepo)

	journey := svc.GenerateJourney(context.Background(), "python", 3)

	assert.Equal(t, model.LevelBeginner, journey.Level)
	require.Len(t, journey.Chapters, model.JourneyChapterCount)
	for _, ch := range journey.Chapters {
		assert.False(t, ch.Completed)
	}

	var count int64
	require.NoError(t, db.Model(&model.ApiCall{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "successful generation records exactly one api call")
}

func TestGenerateJourneySuccessWithCodeFence(t *testing.T) {
	db := setupTestDB(t)
	gen := &stubGenerator{response: "```json\n" + validJourneyJSON(t, model.LevelBeginner, 10) + "\n```"}
	svc := NewJourneyService(gen, repository.NewApiCallRepository(db))

	journey := svc.GenerateJourney(context.Background(), "go", 12)

	assert.Equal(t, model.LevelIntermediate, journey.Level)
	assert.Len(t, journey.Chapters, model.JourneyChapterCount)
}

func TestGenerateJourneyFallbackOnError(t *testing.T) {
	db := setupTestDB(t)
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := NewJourneyService(gen, repository.NewApiCallRepository(db))

	journey := svc.GenerateJourney(context.Background(), "rust", 18)

	assert.Equal(t, model.LevelAdvanced, journey.Level)
	require.Len(t, journey.Chapters, model.JourneyChapterCount)
	for i, ch := range journey.Chapters {
		assert.Equal(t, i+1, ch.Chapter)
		assert.Equal(t, fmt.Sprintf("rust Chapter %d", i+1), ch.Title)
		assert.Equal(t, "Learn key concepts of rust.", ch.Description)
		assert.Equal(t, []string{"Basics"}, ch.Topics)
		assert.Equal(t, []string{"https://example.com"}, ch.Resources)
		assert.Equal(t, "Key takeaways.", ch.Summary)
		assert.False(t, ch.Completed)
	}

	var count int64
	require.NoError(t, db.Model(&model.ApiCall{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "fallback must not consume quota")
}

func TestGenerateJourneyFallbackOnMalformedResponse(t *testing.T) {
	db := setupTestDB(t)
	gen := &stubGenerator{response: "I'm sorry, I can't produce JSON right now."}
	svc := NewJourneyService(gen, repository.NewApiCallRepository(db))

	journey := svc.GenerateJourney(context.Background(), "sql", 8)

	assert.Equal(t, model.LevelBeginner, journey.Level)
	assert.Len(t, journey.Chapters, model.JourneyChapterCount)

	var count int64
	require.NoError(t, db.Model(&model.ApiCall{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGenerateJourneyFallbackOnWrongChapterCount(t *testing.T) {
	db := setupTestDB(t)
	gen := &stubGenerator{response: validJourneyJSON(t, model.LevelBeginner, 3)}
	svc := NewJourneyService(gen, repository.NewApiCallRepository(db))

	journey := svc.GenerateJourney(context.Background(), "java", 2)

	// 兜底保证10章不变量
	assert.Len(t, journey.Chapters, model.JourneyChapterCount)

	var count int64
	require.NoError(t, db.Model(&model.ApiCall{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
