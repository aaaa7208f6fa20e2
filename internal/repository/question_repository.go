package repository

import (
	"skill_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindBySkill 技能标签不区分大小写
func (r *QuestionRepository) FindBySkill(skill string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("LOWER(skill) = LOWER(?)", skill).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Create(&questions).Error
}

// DistinctSkills 题库中出现过的技能标签
func (r *QuestionRepository) DistinctSkills() ([]string, error) {
	var skills []string
	err := r.DB.Model(&model.Question{}).Distinct("skill").Order("skill").Pluck("skill", &skills).Error
	return skills, err
}
