package model

import "fmt"

// 学习旅程固定为10章
const JourneyChapterCount = 10

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Journey 按 (用户, 技能) 生成的学习旅程，整体以JSON形式挂在 UserSkill 上
type Journey struct {
	Level    string    `json:"level"`
	Chapters []Chapter `json:"chapters"`
}

type Chapter struct {
	Chapter     int      `json:"chapter"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Resources   []string `json:"resources"`
	Summary     string   `json:"summary"`
	Completed   bool     `json:"completed"`
}

// Validate 在存储边界校验旅程结构，防止畸形数据入库
func (j *Journey) Validate() error {
	switch j.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("invalid journey level %q", j.Level)
	}
	if len(j.Chapters) != JourneyChapterCount {
		return fmt.Errorf("journey must have exactly %d chapters, got %d", JourneyChapterCount, len(j.Chapters))
	}
	return nil
}

// CompletedCount 已完成章节数
func (j *Journey) CompletedCount() int {
	count := 0
	for _, ch := range j.Chapters {
		if ch.Completed {
			count++
		}
	}
	return count
}

// Progress 完成百分比，始终由章节状态重新计算
func (j *Journey) Progress() float64 {
	if len(j.Chapters) == 0 {
		return 0
	}
	return float64(j.CompletedCount()) / float64(len(j.Chapters)) * 100
}
