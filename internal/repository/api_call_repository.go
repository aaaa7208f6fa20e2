package repository

import (
	"skill_quiz_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ApiCallRepository struct {
	DB *gorm.DB
}

func NewApiCallRepository(db *gorm.DB) *ApiCallRepository {
	return &ApiCallRepository{DB: db}
}

func (r *ApiCallRepository) Create(call *model.ApiCall) error {
	return r.DB.Create(call).Error
}

// CountSince 统计某时间点之后的调用次数（配额只按天聚合使用）
func (r *ApiCallRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ApiCall{}).Where("timestamp >= ?", since).Count(&count).Error
	return count, err
}

// DeleteOlderThan 清理过期日志行，日志从不按行读取
func (r *ApiCallRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.DB.Where("timestamp < ?", cutoff).Delete(&model.ApiCall{})
	return res.RowsAffected, res.Error
}
