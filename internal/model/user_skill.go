package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserSkill 每个 (用户, 技能) 一条记录，用户名与技能均不区分大小写
type UserSkill struct {
	BaseModel
	Username        string                      `gorm:"size:100;not null;uniqueIndex:idx_username_skill" json:"username"`
	Skill           string                      `gorm:"size:100;not null;uniqueIndex:idx_username_skill" json:"skill"`
	Score           int                         `gorm:"not null" json:"score"`
	LearningJourney datatypes.JSONType[Journey] `json:"learning_journey"`
	Progress        float64                     `gorm:"default:0" json:"progress"`
	LastAttemptDate time.Time                   `gorm:"type:date" json:"last_attempt_date"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// Journey 取出存储的旅程值
func (us *UserSkill) Journey() Journey {
	return us.LearningJourney.Data()
}

// AttemptedToday 最后答题日期是否为服务器本地的今天
func (us *UserSkill) AttemptedToday(now time.Time) bool {
	y1, m1, d1 := us.LastAttemptDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
