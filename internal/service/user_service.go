package service

import (
	"skill_quiz_backend/internal/model"
	"skill_quiz_backend/internal/repository"
)

type UserService struct {
	UserRepo      *repository.UserRepository
	UserSkillRepo *repository.UserSkillRepository
}

func NewUserService(userRepo *repository.UserRepository, userSkillRepo *repository.UserSkillRepository) *UserService {
	return &UserService{
		UserRepo:      userRepo,
		UserSkillRepo: userSkillRepo,
	}
}

// SkillData user-data 响应中单个技能的视图
type SkillData struct {
	Skill           string        `json:"skill"`
	Score           int           `json:"score"`
	LearningJourney model.Journey `json:"learning_journey"`
	Progress        float64       `json:"progress"`
	LastAttemptDate string        `json:"last_attempt_date"`
}

func (s *UserService) Exists(username string) (bool, error) {
	return s.UserRepo.Exists(username)
}

func (s *UserService) GetUserData(username string) ([]SkillData, error) {
	skills, err := s.UserSkillRepo.ListByUsername(username)
	if err != nil {
		return nil, err
	}

	data := make([]SkillData, len(skills))
	for i, us := range skills {
		data[i] = SkillData{
			Skill:           us.Skill,
			Score:           us.Score,
			LearningJourney: us.Journey(),
			Progress:        us.Progress,
			LastAttemptDate: us.LastAttemptDate.Format("2006-01-02"),
		}
	}
	return data, nil
}
