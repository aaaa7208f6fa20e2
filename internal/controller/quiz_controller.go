package controller

import (
	"errors"
	"net/http"
	"skill_quiz_backend/internal/service"
	"skill_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

type SubmitScoreRequest struct {
	Username string `json:"username" binding:"required"`
	Score    *int   `json:"score" binding:"required"`
	Skill    string `json:"skill" binding:"required"`
}

// @Summary 检查今日是否可以答题
// @Description 同技能当天已答过或全站配额用尽时拒绝
// @Tags 测验
// @Produce json
// @Param username path string true "用户名"
// @Param skill path string true "技能"
// @Success 200 {object} service.EligibilityResult
// @Router /can-take-quiz/{username}/{skill} [get]
func (c *QuizController) CanTakeQuiz(ctx *gin.Context) {
	result, err := c.Service.CanTakeQuiz(ctx.Param("username"), ctx.Param("skill"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// @Summary 提交测验成绩并生成学习旅程
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body SubmitScoreRequest true "成绩信息"
// @Success 200 {object} map[string]interface{}
// @Router /submit-score [post]
func (c *QuizController) SubmitScore(ctx *gin.Context) {
	var req SubmitScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	journey, err := c.Service.SubmitScore(ctx.Request.Context(), req.Username, *req.Score, req.Skill)
	if err != nil {
		if errors.Is(err, util.ErrScoreOutOfRange) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Score and journey updated",
		"journey": journey,
	})
}
