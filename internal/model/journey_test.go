package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tenChapters() []Chapter {
	chapters := make([]Chapter, JourneyChapterCount)
	for i := range chapters {
		chapters[i] = Chapter{Chapter: i + 1, Title: "t"}
	}
	return chapters
}

func TestJourneyValidate(t *testing.T) {
	j := Journey{Level: LevelBeginner, Chapters: tenChapters()}
	assert.NoError(t, j.Validate())

	j = Journey{Level: "Expert", Chapters: tenChapters()}
	assert.Error(t, j.Validate(), "unknown level label")

	j = Journey{Level: LevelAdvanced, Chapters: tenChapters()[:7]}
	assert.Error(t, j.Validate(), "wrong chapter count")

	j = Journey{Level: LevelIntermediate}
	assert.Error(t, j.Validate(), "no chapters")
}

func TestJourneyProgress(t *testing.T) {
	j := Journey{Level: LevelBeginner, Chapters: tenChapters()}
	assert.Zero(t, j.Progress())

	j.Chapters[0].Completed = true
	j.Chapters[4].Completed = true
	j.Chapters[9].Completed = true
	assert.Equal(t, 3, j.CompletedCount())
	assert.InDelta(t, 30.0, j.Progress(), 0.0001)

	for i := range j.Chapters {
		j.Chapters[i].Completed = true
	}
	assert.InDelta(t, 100.0, j.Progress(), 0.0001)
}

func TestJourneyProgressEmptyChapters(t *testing.T) {
	j := Journey{}
	assert.Zero(t, j.Progress())
}
