package controller

import (
	"errors"
	"net/http"
	"skill_quiz_backend/internal/service"
	"skill_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

type UpdateProgressRequest struct {
	Username     string `json:"username" binding:"required"`
	Skill        string `json:"skill" binding:"required"`
	ChapterIndex *int   `json:"chapter_index" binding:"required"`
	Completed    *bool  `json:"completed" binding:"required"`
}

// @Summary 更新章节完成状态
// @Description 设置章节完成标记并重算进度百分比
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body UpdateProgressRequest true "进度信息"
// @Success 200 {object} map[string]string
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /update-progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.Service.UpdateChapterProgress(req.Username, req.Skill, *req.ChapterIndex, *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserSkillNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidChapterIndex):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Progress updated"})
}
