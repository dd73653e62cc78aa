package main

import (
	"context"
	"log"

	"hr-chatbot-be/internal/bootstrap"
	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/server"
	"hr-chatbot-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	// Note: In a larger app, we might use an errgroup or supervisor here
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if container.PolicyWatcher != nil {
		go func() {
			log.Println("Background: Watching policy.txt for changes...")
			if err := container.PolicyWatcher.Run(context.Background()); err != nil && err != context.Canceled {
				log.Printf("Background Watcher Error: %v", err)
			}
		}()
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
