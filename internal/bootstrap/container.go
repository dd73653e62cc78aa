package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/controller"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/implementation"
	"hr-chatbot-be/internal/service"
	"hr-chatbot-be/internal/watcher"
	"hr-chatbot-be/pkg/ai/leave"
	"hr-chatbot-be/pkg/jsonstore"
	"hr-chatbot-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	PolicyController   controller.IPolicyController
	EmployeeController controller.IEmployeeController
	LeaveController    controller.ILeaveController
	GreetingController controller.IGreetingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	PolicyWatcher   *watcher.PolicyWatcher
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	store, err := jsonstore.New(cfg.App.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open data directory: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OpenRouterBaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Repositories
	messageRepo := implementation.NewMessageRepository(store)
	employeeRepo := implementation.NewEmployeeRepository(store)
	policyRepo := implementation.NewPolicyRepository(store)
	leaveRepo := implementation.NewLeaveCaseRepository(store)
	indexRepo := implementation.NewPolicyIndexRepository(store)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Ai.ReindexTopic, pubSub)
	indexService := service.NewIndexService(indexRepo)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.ReindexTopic,
		indexService,
		sysLogger,
	)

	leaveExtractor := leave.NewExtractor(llmProvider)
	leaveService := service.NewLeaveService(leaveExtractor, employeeRepo, leaveRepo, sysLogger)
	chatService := service.NewChatService(messageRepo, policyRepo, llmProvider, leaveService, sysLogger)
	policyService := service.NewPolicyService(policyRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	greetingService := service.NewGreetingService(llmProvider)

	// Watches data/policy.txt and publishes a reindex event on change.
	policyWatcher, err := watcher.NewPolicyWatcher(
		store.Path(implementation.DocPolicyText),
		publisherService,
		sysLogger,
	)
	if err != nil {
		log.Printf("[WARN] Failed to start policy watcher: %v", err)
	}

	// 6. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		PolicyController:   controller.NewPolicyController(policyService, indexService),
		EmployeeController: controller.NewEmployeeController(employeeService),
		LeaveController:    controller.NewLeaveController(leaveService),
		GreetingController: controller.NewGreetingController(greetingService),

		ConsumerService: consumerService,
		PolicyWatcher:   policyWatcher,
	}
}
