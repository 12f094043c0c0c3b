package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/tcsatheesh/semker/internal/adapters/http"
	"github.com/tcsatheesh/semker/internal/adapters/llm"
	memstore "github.com/tcsatheesh/semker/internal/adapters/storage/memory"
	"github.com/tcsatheesh/semker/internal/adapters/tools"
	"github.com/tcsatheesh/semker/internal/app/agentflow"
	"github.com/tcsatheesh/semker/internal/app/processor"
	"github.com/tcsatheesh/semker/internal/config"
	"github.com/tcsatheesh/semker/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Choose between mock and Vertex by config (useful for dev)
	var (
		model domain.ModelClient
		err   error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK model client")
		model = llm.NewMockModel()
	} else {
		log.Println("[LLM] Using Vertex model client")
		model, err = llm.NewVertexClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Vertex model client: %v", err)
		}
	}

	// In-memory state: messages, updates, threads
	messages := memstore.NewMessageStore()
	updates := memstore.NewUpdateLog()
	threads := memstore.NewThreadRegistry()

	// Agent hierarchy: planner over the specialist catalog
	dialer := tools.NewHTTPDialer()
	catalog := agentflow.DefaultCatalog(agentflow.Endpoints{
		Billing: cfg.BillingToolURL,
		Roaming: cfg.RoamingToolURL,
		Tariff:  cfg.TariffToolURL,
		Faq:     cfg.FaqToolURL,
	})

	newAgent := func(ctx context.Context, messageID domain.MessageID, conversationID domain.ConversationID) (agentflow.Agent, error) {
		return agentflow.NewPlanner(model, dialer, catalog), nil
	}

	svc := processor.NewService(messages, updates, threads, newAgent, cfg.Version)

	// HTTP server
	handler := httpadapter.NewServer(svc)

	port := ":" + cfg.Port
	log.Println("Semker API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
