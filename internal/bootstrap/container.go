package bootstrap

import (
	"context"
	"log"

	"flou-backend/internal/config"
	"flou-backend/internal/controller"
	"flou-backend/internal/handler"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/pkg/mailer"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/internal/service"
	"flou-backend/internal/websocket"
	"flou-backend/pkg/dialog"
	"flou-backend/pkg/embedding"
	"flou-backend/pkg/llm/factory"

	pktNats "flou-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProfileController  controller.IProfileController
	WellnessController controller.IWellnessController
	ContentController  controller.IContentController
	FeedbackController controller.IFeedbackController
	ChatController     controller.IChatController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Keys.GoogleGemini != "" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		log.Printf("[WARN] No embedding provider configured, semantic retrieval disabled")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM provider: %v. Running with template replies", err)
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Dialog engine
	var retriever dialog.Retriever
	if embeddingProvider != nil {
		retriever = service.NewStrategyRetriever(uowFactory, embeddingProvider, sysLogger)
	}
	engine := dialog.NewEngine(llmProvider, retriever, sysLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.CheckinTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.CheckinTopic,
		uowFactory,
		natsPub,
		sysLogger,
	)

	profileService := service.NewProfileService(uowFactory)
	wellnessService := service.NewWellnessService(uowFactory, publisherService, natsPub, sysLogger)
	contentService := service.NewContentService(uowFactory)
	feedbackService := service.NewFeedbackService(uowFactory, natsPub, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		engine,
		natsPub,
		emailService,
		cfg.App.CrisisAlertEmail,
		sysLogger,
	)

	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	return &Container{
		ProfileController:  controller.NewProfileController(profileService),
		WellnessController: controller.NewWellnessController(wellnessService, profileService),
		ContentController:  controller.NewContentController(contentService, profileService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		ChatController:     controller.NewChatController(chatService, profileService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}