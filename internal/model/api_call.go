package model

import "time"

// ApiCall 每次成功的外部生成调用记录一行，仅用于按日计数
type ApiCall struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (ApiCall) TableName() string {
	return "api_calls"
}
