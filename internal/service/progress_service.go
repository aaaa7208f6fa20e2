package service

import (
	"errors"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressService 章节完成状态更新与进度重算
type ProgressService struct {
	UserSkillRepo *repository.UserSkillRepository
}

func NewProgressService(userSkillRepo *repository.UserSkillRepository) *ProgressService {
	return &ProgressService{UserSkillRepo: userSkillRepo}
}

// UpdateChapterProgress 幂等：重复设置同一值不改变存储状态。
// 旅程与进度在同一条 UPDATE 中落库。
func (s *ProgressService) UpdateChapterProgress(username, skill string, chapterIndex int, completed bool) error {
	us, err := s.UserSkillRepo.FindByUsernameAndSkill(username, skill)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserSkillNotFound
		}
		return err
	}

	journey := us.Journey()
	if chapterIndex < 0 || chapterIndex >= len(journey.Chapters) {
		return util.ErrInvalidChapterIndex
	}

	journey.Chapters[chapterIndex].Completed = completed

	return s.UserSkillRepo.UpdateJourneyProgress(us.ID, journey, journey.Progress())
}
