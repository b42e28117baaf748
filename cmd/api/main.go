package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dosanjos/vendas-ia/internal/infra/database"
	"github.com/dosanjos/vendas-ia/internal/infra/http/handlers"
	appmiddleware "github.com/dosanjos/vendas-ia/internal/infra/http/middleware"
	"github.com/dosanjos/vendas-ia/internal/infra/integration/ai"
	"github.com/dosanjos/vendas-ia/internal/infra/integration/crm"
	"github.com/dosanjos/vendas-ia/internal/infra/mail"
	"github.com/dosanjos/vendas-ia/internal/infra/queue"
	"github.com/dosanjos/vendas-ia/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositórios
	clientRepo := database.NewClientRepository(db)
	messageRepo := database.NewMessageRepository(db)

	// 2. Colaborador de IA
	aiClient := ai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"))

	// 3. Fila de eventos de análise + worker de sync com CRM (opcionais)
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		var crmClient queue.CRMSyncClient
		if os.Getenv("CRM_WEBHOOK_URL") != "" {
			crmClient = crm.NewClient(os.Getenv("CRM_WEBHOOK_URL"), os.Getenv("CRM_API_TOKEN"))
		}

		worker := queue.NewWorker(rabbitMQ.Ch, crmClient)
		go worker.Start(queue.QueueName)
	}

	// 4. Email de alerta pro time comercial (opcional)
	var emailSender usecase.EmailService
	if os.Getenv("MAIL_HOST") != "" {
		mailPort, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if err != nil {
			mailPort = 587
		}
		emailSender = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)
	}

	// 5. UseCases
	createClientUC := usecase.NewCreateClientUseCase(clientRepo, emailSender, os.Getenv("SALES_NOTIFY_TO"))
	addContactUC := usecase.NewAddContactUseCase(clientRepo)
	analyzeUC := usecase.NewAnalyzeConversationUseCase(clientRepo, messageRepo, aiClient, producer)

	// 6. Handlers
	clientHandler := handlers.NewClientHandler(createClientUC, addContactUC, clientRepo)
	conversationHandler := handlers.NewConversationHandler(messageRepo)
	analysisHandler := handlers.NewAnalysisHandler(analyzeUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Root)
		r.Post("/clients", clientHandler.HandleCreate)
		r.Get("/clients", clientHandler.HandleList)
		r.Get("/clients/{id}", clientHandler.HandleGet)
		r.Post("/clients/{id}/contacts", clientHandler.HandleAddContact)
		r.Post("/analyze-conversation", analysisHandler.Handle)
		r.Get("/conversations/{clientID}/{sessionID}", conversationHandler.HandleHistory)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Sistema IA Vendas rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
