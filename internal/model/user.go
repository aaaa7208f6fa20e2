package model

type User struct {
	BaseModel
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
}

func (User) TableName() string {
	return "users"
}
