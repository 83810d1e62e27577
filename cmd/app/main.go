package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"csat/cmd/fx/admin_fx"
	"csat/cmd/fx/insights_fx"
	"csat/cmd/fx/store_fx"
	"csat/cmd/fx/summarizer_fx"
	"csat/cmd/fx/survey_fx"
	"csat/internal/api/controllers"
	"csat/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		store_fx.Module,
		summarizer_fx.Module,
		survey_fx.Module,
		insights_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	surveyController *controllers.SurveyController,
	insightsController *controllers.InsightsController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, surveyController, insightsController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	surveyController *controllers.SurveyController,
	insightsController *controllers.InsightsController,
	adminController *controllers.AdminController) {

	surveyGroup := r.Group("/surveys")
	surveyGroup.POST("", surveyController.SubmitSurvey)
	surveyGroup.GET("", surveyController.ListSurveys)
	surveyGroup.GET("/export", surveyController.ExportSurveys)
	surveyGroup.GET("/check/:ticketId", surveyController.CheckTicket)
	surveyGroup.DELETE("/:id", surveyController.DeleteSurvey)

	insightsGroup := r.Group("/insights")
	insightsGroup.GET("", insightsController.GetInsights)
	insightsGroup.POST("/summary", insightsController.Summarize)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/login", adminController.Login)

	protected := adminGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	protected.DELETE("/surveys", adminController.ClearSurveys)
	protected.POST("/surveys/reset", adminController.ResetSurveys)
}
