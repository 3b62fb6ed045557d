package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/auth"
	"github.com/tropicaldog17/folio/internal/config"
	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/handlers"
	"github.com/tropicaldog17/folio/internal/logger"
	"github.com/tropicaldog17/folio/internal/services"
)

func main() {
	// Quantities, prices and OHLC fields go over the wire as bare JSON
	// numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Database connection
	database, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		log.Fatal("Database health check failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize services
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
	userService := services.NewUserService(database)
	portfolioService := services.NewPortfolioService(database)
	transactionService := services.NewTransactionService(database)
	quoteService := services.NewQuoteService(database)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, log)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, log)
	transactionHandler := handlers.NewTransactionHandler(transactionService, log)
	quoteHandler := handlers.NewQuoteHandler(quoteService, log)

	// Setup HTTP router
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"folio-backend"}`))
	})

	api := router.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/register", authHandler.HandleRegister)
	api.HandleFunc("/login", authHandler.HandleLogin)
	api.HandleFunc("/quotes/{ticker}", quoteHandler.HandleQuote).Methods(http.MethodGet)

	// Protected endpoints
	api.Handle("/portfolios", handlers.RequireAuth(tokens, http.HandlerFunc(portfolioHandler.HandlePortfolios)))
	api.Handle("/portfolio/{id}", handlers.RequireAuth(tokens, http.HandlerFunc(portfolioHandler.HandleSummary)))
	api.Handle("/transactions", handlers.RequireAuth(tokens, http.HandlerFunc(transactionHandler.HandleTransactions)))
	api.Handle("/quotes/{ticker}", handlers.RequireAuth(tokens, http.HandlerFunc(quoteHandler.HandleSaveQuote))).Methods(http.MethodPost)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	log.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, corsHandler(router)); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
