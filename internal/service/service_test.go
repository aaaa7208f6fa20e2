package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserSkill{},
		&model.Question{},
		&model.ApiCall{},
	))

	return db
}

// stubGenerator TextGenerator 的离线实现
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func validJourneyJSON(t *testing.T, level string, chapterCount int) string {
	t.Helper()

	chapters := make([]model.Chapter, chapterCount)
	for i := range chapters {
		chapters[i] = model.Chapter{
			Chapter:     i + 1,
			Title:       fmt.Sprintf("Chapter %d", i+1),
			Description: "desc",
			Topics:      []string{"topic"},
			Resources:   []string{"https://example.org"},
			Summary:     "summary",
			// 外部响应里故意带上 completed=true，实现必须重置
			Completed: true,
		}
	}

	data, err := json.Marshal(model.Journey{Level: level, Chapters: chapters})
	require.NoError(t, err)
	return string(data)
}
