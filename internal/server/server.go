package server

import (
	"log"
	"strings"
	"time"

	"github.com/edudash/backend/internal/cache"
	"github.com/edudash/backend/internal/config"
	"github.com/edudash/backend/internal/enrichment"
	"github.com/edudash/backend/internal/handler"
	"github.com/edudash/backend/internal/repository"
	"github.com/edudash/backend/internal/service"
	"github.com/edudash/backend/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	fileStorage, err := storage.NewCloudinaryStorage(storage.CloudinaryConfig{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	})
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	listCache := cache.New(redisClient, cfg.CacheTTL)
	enricher := enrichment.NewClient(cfg.EnrichmentBaseURL, cfg.EnrichmentTimeout)

	boardRepo := repository.NewBoardRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	boardHandler := handler.NewBoardHandler(service.NewBoardService(boardRepo, fileStorage, listCache))
	classHandler := handler.NewClassHandler(service.NewClassService(classRepo, boardRepo, listCache))
	subjectHandler := handler.NewSubjectHandler(service.NewSubjectService(subjectRepo, boardRepo, classRepo, fileStorage, listCache))
	chapterHandler := handler.NewChapterHandler(service.NewChapterService(chapterRepo, classRepo, subjectRepo, enricher, listCache))
	questionHandler := handler.NewQuestionHandler(service.NewQuestionService(questionRepo, listCache))
	mediaHandler := handler.NewMediaHandler(service.NewMediaService(fileStorage))

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	api := router.Group("/api")
	{
		api.GET("/boards", boardHandler.ListBoards)
		api.POST("/boards", boardHandler.CreateBoard)
		api.GET("/boards/:id", boardHandler.GetBoard)
		api.PUT("/boards/:id", boardHandler.UpdateBoard)
		api.DELETE("/boards/:id", boardHandler.DeleteBoard)

		api.GET("/classes", classHandler.ListClasses)
		api.POST("/classes", classHandler.CreateClass)
		api.GET("/classes/:id", classHandler.GetClass)
		api.PUT("/classes/:id", classHandler.UpdateClass)
		api.DELETE("/classes/:id", classHandler.DeleteClass)

		api.GET("/subjects", subjectHandler.ListSubjects)
		api.POST("/subjects", subjectHandler.CreateSubject)
		api.GET("/subjects/:id", subjectHandler.GetSubject)
		api.PUT("/subjects/:id", subjectHandler.UpdateSubject)
		api.DELETE("/subjects/:id", subjectHandler.DeleteSubject)

		api.GET("/chapters", chapterHandler.ListChapters)
		api.POST("/chapters", chapterHandler.CreateChapter)
		api.GET("/chapters/:id", chapterHandler.GetChapter)
		api.PUT("/chapters/:id", chapterHandler.UpdateChapter)
		api.DELETE("/chapters/:id", chapterHandler.DeleteChapter)
		api.POST("/chapters/:id/questions/generate", chapterHandler.GenerateQuestions)
		api.POST("/chapters/:id/enrichment/upload", chapterHandler.PushToEnrichment)

		api.GET("/questions", questionHandler.ListQuestions)
		api.POST("/questions", questionHandler.BulkCreateQuestions)
		api.PUT("/questions/:id", questionHandler.UpdateQuestion)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)

		api.POST("/uploads/media", mediaHandler.UploadMedia)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
