package controller

import (
	"fmt"
	"net/http"
	"skill_quiz_backend/internal/service"
	"skill_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 按技能获取题目
// @Tags 题库
// @Produce json
// @Param skill path string true "技能"
// @Success 200 {array} service.QuestionResponse
// @Router /questions/{skill} [get]
func (c *QuestionController) GetQuestionsBySkill(ctx *gin.Context) {
	questions, err := c.Service.ListBySkill(ctx.Request.Context(), ctx.Param("skill"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// @Summary 获取全部题目
// @Tags 题库
// @Produce json
// @Success 200 {array} service.QuestionResponse
// @Router /questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.Service.ListAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// @Summary 批量导入题目
// @Tags 题库
// @Accept json
// @Produce json
// @Param body body []service.QuestionRequest true "题目列表"
// @Success 200 {object} map[string]string
// @Router /questions [post]
func (c *QuestionController) AddQuestions(ctx *gin.Context) {
	var reqs []service.QuestionRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.Service.BulkAdd(ctx.Request.Context(), reqs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully added %d questions", count)})
}

// @Summary 获取题库中的技能标签
// @Tags 题库
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /available-skills [get]
func (c *QuestionController) GetAvailableSkills(ctx *gin.Context) {
	skills, err := c.Service.AvailableSkills(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"skills": skills})
}
