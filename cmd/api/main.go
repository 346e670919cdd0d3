package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/com2u/CryptoRRSView/db"
	"github.com/com2u/CryptoRRSView/internal/handler"
	"github.com/com2u/CryptoRRSView/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	pools, err := db.Connect()
	if err != nil {
		log.Fatalf("error configuring DB pools: %v", err)
	}
	defer pools.Close()

	db.Probe(pools.News, "news")
	db.Probe(pools.Securities, "securities")
	db.Probe(pools.Sentiment, "sentiment")

	newsRepo := repository.NewNewsRepository(pools.News)
	securityRepo := repository.NewSecurityRepository(pools.Securities)
	sentimentRepo := repository.NewSentimentRepository(pools.Sentiment)

	verifyTables(newsRepo, securityRepo, sentimentRepo)

	newsHandler := handler.NewNewsHandler(newsRepo)
	securityHandler := handler.NewSecurityHandler(securityRepo)
	sentimentHandler := handler.NewSentimentHandler(sentimentRepo)

	r := gin.Default()

	allowedOrigins := []string{
		"http://localhost:3386",
		"http://cryptorssview.ai-server.org",
		"http://cryptoapi.ai-server.org",
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/news", newsHandler.GetNews)
	r.GET("/api/sources", newsHandler.GetSources)
	r.GET("/api/sentiment", sentimentHandler.GetSentiment)
	r.GET("/api/sentiment/sources", sentimentHandler.GetSentimentSources)
	r.GET("/api/sentiment/securities", sentimentHandler.GetSentimentSecurities)
	r.GET("/api/securities/:name", securityHandler.GetSecuritySeries)
	r.GET("/api/health", newsHandler.GetHealth)

	port := os.Getenv("BACKEND_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "4000"
	}

	slog.Info("backend server starting", "port", port)

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// verifyTables ensures the sentiment table exists and logs row counts
// for the news and securities tables. Diagnostics only: a failure here
// is logged and serving proceeds, the affected pool surfaces its own
// errors per request.
func verifyTables(news *repository.NewsRepository, securities *repository.SecurityRepository, sentiment *repository.SentimentRepository) {
	if total, err := news.Total(); err != nil {
		slog.Warn("news table check failed", "error", err)
	} else {
		slog.Info("news table present", "rows", total)
	}

	if total, err := securities.Total(); err != nil {
		slog.Warn("securities table check failed", "error", err)
	} else {
		slog.Info("securities table present", "rows", total)
	}

	if err := sentiment.EnsureTable(); err != nil {
		slog.Error("error ensuring sentiment table", "error", err)
		return
	}

	if total, err := sentiment.Total(); err != nil {
		slog.Warn("sentiment table check failed", "error", err)
	} else {
		slog.Info("sentiment table ensured", "rows", total)
	}
}
