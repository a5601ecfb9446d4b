package main

import (
	"log"
	"net/http"
	"time"

	"simulado-service/internal/cache"
	"simulado-service/internal/config"
	"simulado-service/internal/db"
	"simulado-service/internal/event"
	"simulado-service/internal/handlers"
	"simulado-service/internal/repository"
	"simulado-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis cache for answer-history recency lookups
	var recency *cache.RecencyCache
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		recency = cache.NewRecencyCache(rdb, cfg.Simulado.RecencyCacheTTL)
	} else {
		log.Println("Redis not configured, answer history will be read from Mongo on every run")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Simulado.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB.Database)

	// Catalog
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Taxonomy (read-only projections)
	taxonomyRepo := repository.NewTaxonomyRepository(database)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)

	// Answer history + simulado engine
	answerRepo := repository.NewAnswerRepository(database)
	simuladoService := service.NewSimuladoService(questionRepo, taxonomyRepo, answerRepo, recency)
	if publisher != nil {
		simuladoService.Events = publisher
	}
	simuladoHandler := handlers.NewSimuladoHandler(simuladoService)

	publicQuestion := r.Group("/public/simulado/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	publicTaxonomy := r.Group("/public/simulado/taxonomy")
	{
		publicTaxonomy.GET("/disciplines", taxonomyHandler.ListDisciplines)
		publicTaxonomy.GET("/disciplines/:disciplineId/themes", taxonomyHandler.ListThemes)
		publicTaxonomy.GET("/themes/:themeId/subthemes", taxonomyHandler.ListSubthemes)
	}

	publicSimulado := r.Group("/public/simulado")
	{
		publicSimulado.POST("/generate", simuladoHandler.Generate)
	}

	protectedQuestion := r.Group("/protected/simulado/question")
	{
		protectedQuestion.POST("/", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("question.created", nil)
			}
		})
		protectedQuestion.PUT("/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("question.updated", gin.H{"id": c.Param("id")})
			}
		})
		protectedQuestion.DELETE("/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("question.deleted", gin.H{"id": c.Param("id")})
			}
		})
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("simulado-service listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
