package repository

import (
	"skill_quiz_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserSkillRepository struct {
	DB *gorm.DB
}

func NewUserSkillRepository(db *gorm.DB) *UserSkillRepository {
	return &UserSkillRepository{DB: db}
}

// FindByUsernameAndSkill 用户名与技能均不区分大小写
func (r *UserSkillRepository) FindByUsernameAndSkill(username, skill string) (*model.UserSkill, error) {
	var us model.UserSkill
	err := r.DB.Where("LOWER(username) = LOWER(?) AND LOWER(skill) = LOWER(?)", username, skill).First(&us).Error
	if err != nil {
		return nil, err
	}
	return &us, nil
}

func (r *UserSkillRepository) ListByUsername(username string) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	err := r.DB.Where("LOWER(username) = LOWER(?)", username).Order("skill").Find(&skills).Error
	return skills, err
}

func (r *UserSkillRepository) Create(us *model.UserSkill) error {
	return r.DB.Create(us).Error
}

func (r *UserSkillRepository) Save(us *model.UserSkill) error {
	return r.DB.Save(us).Error
}

// UpdateJourneyProgress 将旅程与进度作为同一条 UPDATE 原子落库
func (r *UserSkillRepository) UpdateJourneyProgress(id uint, journey model.Journey, progress float64) error {
	return r.DB.Model(&model.UserSkill{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"learning_journey": datatypes.NewJSONType(journey),
			"progress":         progress,
		}).Error
}
