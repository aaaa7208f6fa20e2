package service

import (
	"context"
	"errors"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedUserSkill 通过提交路径写入一条带兜底旅程的记录
func seedUserSkill(t *testing.T, db *gorm.DB, username, skill string) {
	t.Helper()
	svc := newQuizService(t, db, &stubGenerator{err: errors.New("offline")}, 200)
	_, err := svc.SubmitScore(context.Background(), username, 12, skill)
	require.NoError(t, err)
}

func TestUpdateChapterProgressNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(repository.NewUserSkillRepository(db))

	err := svc.UpdateChapterProgress("ghost", "python", 0, true)
	assert.ErrorIs(t, err, util.ErrUserSkillNotFound)
}

func TestUpdateChapterProgressInvalidIndex(t *testing.T) {
	db := setupTestDB(t)
	seedUserSkill(t, db, "alice", "python")
	svc := NewProgressService(repository.NewUserSkillRepository(db))

	// 10章旅程的合法下标是 0..9
	assert.ErrorIs(t, svc.UpdateChapterProgress("alice", "python", 10, true), util.ErrInvalidChapterIndex)
	assert.ErrorIs(t, svc.UpdateChapterProgress("alice", "python", -1, true), util.ErrInvalidChapterIndex)
}

func TestUpdateChapterProgressRecomputesProgress(t *testing.T) {
	db := setupTestDB(t)
	seedUserSkill(t, db, "alice", "python")
	repo := repository.NewUserSkillRepository(db)
	svc := NewProgressService(repo)

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.UpdateChapterProgress("alice", "python", i, true))
	}

	us, err := repo.FindByUsernameAndSkill("alice", "python")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, us.Progress, 0.0001)
	j := us.Journey()
	assert.Equal(t, 4, j.CompletedCount())

	// 取消一章
	require.NoError(t, svc.UpdateChapterProgress("alice", "python", 0, false))
	us, err = repo.FindByUsernameAndSkill("alice", "python")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, us.Progress, 0.0001)
}

func TestUpdateChapterProgressIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedUserSkill(t, db, "bob", "rust")
	repo := repository.NewUserSkillRepository(db)
	svc := NewProgressService(repo)

	require.NoError(t, svc.UpdateChapterProgress("bob", "rust", 2, true))
	first, err := repo.FindByUsernameAndSkill("bob", "rust")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateChapterProgress("bob", "rust", 2, true))
	second, err := repo.FindByUsernameAndSkill("bob", "rust")
	require.NoError(t, err)

	assert.Equal(t, first.Progress, second.Progress)
	assert.Equal(t, first.Journey(), second.Journey())
}

func TestUpdateChapterProgressCaseInsensitiveLookup(t *testing.T) {
	db := setupTestDB(t)
	seedUserSkill(t, db, "carol", "go")
	repo := repository.NewUserSkillRepository(db)
	svc := NewProgressService(repo)

	require.NoError(t, svc.UpdateChapterProgress("CAROL", "GO", 5, true))

	us, err := repo.FindByUsernameAndSkill("carol", "go")
	require.NoError(t, err)
	assert.True(t, us.Journey().Chapters[5].Completed)
	assert.InDelta(t, 10.0, us.Progress, 0.0001)
}
