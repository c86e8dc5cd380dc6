package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"witt-interpreter-be/internal/config"
	"witt-interpreter-be/internal/controller"
	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/internal/pkg/ratelimit"
	"witt-interpreter-be/internal/repository/memory"
	"witt-interpreter-be/internal/service"
	"witt-interpreter-be/internal/websocket"
	"witt-interpreter-be/pkg/database"
	"witt-interpreter-be/pkg/embedding"
	"witt-interpreter-be/pkg/llm/factory"
	"witt-interpreter-be/pkg/vectorstore"
	memstore "witt-interpreter-be/pkg/vectorstore/memory"
	"witt-interpreter-be/pkg/vectorstore/pgvector"
	"witt-interpreter-be/pkg/vectorstore/qdrant"

	pktNats "witt-interpreter-be/pkg/nats"
)

const progressTopic = "interpretation.progress"

type Container struct {
	// Controllers
	SearchController         controller.ISearchController
	InterpretController      controller.IInterpretController
	InterpretationController controller.IInterpretationController
	FrameworkController      controller.IFrameworkController
	QuestionController       controller.IQuestionController

	// WebSockets & progress delivery
	WebSocketHub   *websocket.Hub
	ProgressBridge *websocket.Bridge
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Vector Store
	var store vectorstore.Store
	switch cfg.Vector.Backend {
	case "pgvector":
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to Postgres: %v", err)
		}
		store = pgvector.NewStore(db)
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	case "memory":
		store = memstore.NewStore()
		log.Printf("[INFO] Using Vector Store: MEMORY")
	default:
		store = qdrant.NewStore(qdrant.Config{
			URL:     cfg.Vector.QdrantURL,
			APIKey:  cfg.Vector.QdrantKey,
			Timeout: 15 * time.Second,
		})
		log.Printf("[INFO] Using Vector Store: QDRANT (%s)", cfg.Vector.QdrantURL)
	}

	// 4. Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	default:
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	// 5. LLM Provider
	llmKey := cfg.Ai.OpenAIKey
	if cfg.Ai.LLMProvider == "huggingface" {
		llmKey = cfg.Ai.HuggingFaceKey
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.FrameworkModel,
		llmKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 6. Optional infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 7. WebSocket Hub + progress bridge
	wsLogger := logger.NewIsolatedLogger("logs/progress.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	bridge := websocket.NewBridge(pubSub, progressTopic, wsHub, wsLogger)
	if err := bridge.Run(context.Background()); err != nil {
		log.Fatalf("[FATAL] Failed to start progress bridge: %v", err)
	}

	// 8. Services
	publisherService := service.NewPublisherService(pubSub, progressTopic, natsPub, sysLogger)

	runRepo := memory.NewRunRepository()
	cooldown := ratelimit.NewCooldown(time.Duration(cfg.App.CooldownSeconds) * time.Second)

	searchService := service.NewSearchService(
		store,
		embeddingProvider,
		sysLogger,
		cfg.Retrieve.PrimaryTopK,
		cfg.Retrieve.SecondaryTopK,
	)
	interpretService := service.NewInterpretService(
		llmProvider,
		sysLogger,
		cfg.Ai.FrameworkModel,
		cfg.Ai.TransactionModel,
	)
	questionService := service.NewQuestionService(llmProvider, sysLogger, cfg.Ai.QuestionModel)
	interpretationService := service.NewInterpretationService(
		searchService,
		interpretService,
		runRepo,
		publisherService,
		cooldown,
		sysLogger,
	)

	// 9. Controllers
	return &Container{
		SearchController:         controller.NewSearchController(searchService),
		InterpretController:      controller.NewInterpretController(interpretService),
		InterpretationController: controller.NewInterpretationController(interpretationService),
		FrameworkController:      controller.NewFrameworkController(),
		QuestionController:       controller.NewQuestionController(questionService),

		WebSocketHub:   wsHub,
		ProgressBridge: bridge,
	}
}
