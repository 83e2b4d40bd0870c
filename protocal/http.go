package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"golang-health-portal/configs"
	httpAdapter "golang-health-portal/internal/adapters/input/http"
	"golang-health-portal/internal/adapters/output/gemini"
	"golang-health-portal/internal/adapters/output/memory"
	"golang-health-portal/internal/adapters/output/postgres"
	"golang-health-portal/internal/application"
	"golang-health-portal/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization,X-Owner-ID",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters
	reasoningClient, err := gemini.NewGeminiClientAdapter(configs.GetViper().Gemini)
	if err != nil {
		logrus.Fatalf("Failed to create Gemini client: %v", err)
	}
	sessionStore := memory.NewMemorySessionStore()
	reportRepo := postgres.NewReportRepository(dbConGorm.Postgres)

	// Application services (use cases)
	interviewSrv := application.NewInterviewService(
		sessionStore,
		reasoningClient,
		configs.GetViper().Interview.TotalQuestions,
		time.Duration(configs.GetViper().Interview.SessionTimeout)*time.Minute,
	)
	documentSrv := application.NewDocumentService(
		reasoningClient,
		configs.GetViper().Batch.MaxConcurrency,
		configs.GetViper().Batch.DefaultLanguage,
	)
	chatSrv := application.NewChatService(reasoningClient)
	referenceSrv := application.NewReferenceService()
	reportSrv := application.NewReportService(reportRepo)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(interviewSrv, dbConGorm.Postgres)
	documentHdl := httpAdapter.NewDocumentHandler(documentSrv)
	chatHdl := httpAdapter.NewChatHandler(chatSrv)
	referenceHdl := httpAdapter.NewReferenceHandler(referenceSrv)
	reportHdl := httpAdapter.NewReportHandler(reportSrv)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Post("/interview/start", hdl.StartInterview)
		magnolia.Post("/interview/answer", hdl.SubmitAnswer)

		magnolia.Post("/documents/process", documentHdl.ProcessDocuments)

		magnolia.Post("/chat", chatHdl.SendMessage)

		magnolia.Get("/medications", referenceHdl.GetMedications)
		magnolia.Post("/check-interactions", referenceHdl.CheckInteractions)
		magnolia.Get("/symptoms", referenceHdl.GetSymptoms)
		magnolia.Post("/check-conditions", referenceHdl.CheckConditions)

		magnolia.Post("/reports/save", reportHdl.SaveReport)
		magnolia.Get("/reports", reportHdl.GetReports)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
