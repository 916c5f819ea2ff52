package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/campushub/campus-hub/internal/config"
	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/handlers"
	ws "github.com/campushub/campus-hub/internal/websocket"
	"github.com/campushub/campus-hub/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
	Config     *config.Config
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbConn, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	blacklist := auth.NewRedisBlacklist(rdb)

	hub := ws.NewHub()
	go hub.Run()

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, blacklist)
	marketH := handlers.NewMarketplaceHandler(dbConn, cfg.UploadDir)
	timetableH := handlers.NewTimetableHandler(dbConn)
	wsH := handlers.NewWebSocketHandler(hub, dbConn)

	router := gin.Default()
	APIEndpoints(router, cfg, jwtMgr, blacklist, authH, marketH, timetableH, wsH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
		Config:     cfg,
	}
}

// Run serves until SIGINT/SIGTERM, then drains the chat hub and shuts the
// HTTP server down.
func (s *Server) Run() {
	srv := &http.Server{Addr: ":" + s.Config.Port, Handler: s.Router}

	go func() {
		log.Printf("Server starting on port %s", s.Config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server run error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down")
	s.Hub.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
