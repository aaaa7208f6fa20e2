package controller

import (
	"net/http"
	"skill_quiz_backend/internal/service"
	"skill_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary 检查用户名是否存在
// @Tags 用户
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} map[string]bool
// @Router /check-username/{username} [get]
func (c *UserController) CheckUsername(ctx *gin.Context) {
	exists, err := c.Service.Exists(ctx.Param("username"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"exists": exists})
}

// @Summary 获取用户全部技能数据
// @Tags 用户
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} map[string]interface{}
// @Router /user-data/{username} [get]
func (c *UserController) GetUserData(ctx *gin.Context) {
	skills, err := c.Service.GetUserData(ctx.Param("username"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"skills": skills})
}
