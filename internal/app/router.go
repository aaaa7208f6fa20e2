package app

import (
	"skill_quiz_backend/docs"
	"skill_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 用户
		api.GET("/check-username/:username", c.user.CheckUsername)
		api.GET("/user-data/:username", c.user.GetUserData)

		// 测验与旅程
		api.GET("/can-take-quiz/:username/:skill", c.quiz.CanTakeQuiz)
		api.POST("/submit-score", c.quiz.SubmitScore)
		api.POST("/update-progress", c.progress.UpdateProgress)

		// 题库
		api.GET("/questions", c.question.GetAllQuestions)
		api.GET("/questions/:skill", c.question.GetQuestionsBySkill)
		api.POST("/questions", c.question.AddQuestions)
		api.GET("/available-skills", c.question.GetAvailableSkills)
	}
}
