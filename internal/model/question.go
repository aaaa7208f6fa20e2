package model

// Question 题库条目；options 为JSON编码的字符串数组
type Question struct {
	BaseModel
	Type          string `gorm:"size:50;index" json:"type"`
	Question      string `gorm:"size:500" json:"question"`
	Options       string `gorm:"type:text" json:"options"`
	CorrectAnswer string `gorm:"size:255" json:"correct_answer"`
	Skill         string `gorm:"size:100;index" json:"skill"`
}

func (Question) TableName() string {
	return "questions"
}
