package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taskhub/taskhub/internal/auth"
	"github.com/taskhub/taskhub/internal/config"
	"github.com/taskhub/taskhub/internal/projects"
	"github.com/taskhub/taskhub/internal/store"
	"github.com/taskhub/taskhub/internal/tasks"
	"github.com/taskhub/taskhub/internal/users"
)

// AppState holds all application services
type AppState struct {
	DB          *bun.DB
	Logger      *zap.Logger
	Config      *config.Config
	UserService users.UserManager
	TaskService tasks.TaskManager
	AuthService auth.PrincipalResolver
}

func main() {
	// Load configuration
	config.Load()

	// Initialize logger with config
	logger := initLogger()
	logger.Info("Configuration loaded", zap.String("source", "config.Load()"))

	// Initialize application state
	as, err := newAppState(logger)
	if err != nil {
		logger.Fatal("Failed to initialize application state", zap.Error(err))
	}

	// Run schema migrations
	ctx := context.Background()
	if err := store.Migrate(ctx, as.DB); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Create HTTP server
	router := setupRouter(as)

	// Server configuration from config
	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(as, server, logger)

	// Start server
	logger.Info("Starting taskhub server", zap.String("address", addr))

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates and initializes the application state
func newAppState(logger *zap.Logger) (*AppState, error) {
	pgConfig := config.Postgres()

	logger.Info("Database configuration",
		zap.String("host", pgConfig.Host),
		zap.Int("port", pgConfig.Port),
		zap.String("database", pgConfig.Database),
		zap.String("user", pgConfig.User))

	db, err := store.NewPostgresDB(pgConfig.DSN(), pgConfig.MaxOpenConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize user service with database
	userStore := users.NewPostgresStore(db)
	projectStore := projects.NewPostgresStore(db)
	userService := users.NewService(userStore, projectStore)

	// Initialize task query service with database
	taskStore := tasks.NewPostgresStore(db)
	taskService := tasks.NewService(taskStore)

	// Initialize principal resolution service with database
	principalStore := auth.NewPostgresStore(db)
	authService := auth.NewService(principalStore)

	return &AppState{
		DB:          db,
		Logger:      logger,
		Config:      config.Get(),
		UserService: userService,
		TaskService: taskService,
		AuthService: authService,
	}, nil
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var config zap.Config
	if logConfig.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

// isValidAdminAuth validates administrative authentication using config
func isValidAdminAuth(authHeader string) bool {
	expectedKey := config.Auth().AdminAPIKey
	if expectedKey == "" {
		return false // No key configured
	}

	if authHeader == "" {
		return false
	}

	// Accept either Bearer or Api-Key format
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		return token == expectedKey
	}

	if strings.HasPrefix(authHeader, "Api-Key ") {
		token := strings.TrimPrefix(authHeader, "Api-Key ")
		return token == expectedKey
	}

	return false
}

// AuthenticationMiddleware guards the API routes. An administrative API key
// grants access directly; otherwise the caller names a principal via the
// X-Auth-Login header and the middleware resolves it through the principal
// bridge and compares the presented credential reference.
func AuthenticationMiddleware(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Skip auth for health endpoints (handled outside API group)
		if strings.HasPrefix(path, "/health") {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if isValidAdminAuth(authHeader) {
			c.Next()
			return
		}

		loginName := c.GetHeader("X-Auth-Login")
		if loginName == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"hint":  "Use an admin API key or X-Auth-Login with a credential",
			})
			c.Abort()
			return
		}

		principal, err := as.AuthService.ResolvePrincipal(c.Request.Context(), loginName)
		if err != nil {
			if auth.IsPrincipalNotFound(err) {
				as.Logger.Warn("Principal resolution failed",
					zap.String("login_name", loginName),
					zap.String("path", path))
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown login name"})
				c.Abort()
				return
			}
			as.Logger.Error("Principal lookup error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication unavailable"})
			c.Abort()
			return
		}

		credential := strings.TrimPrefix(authHeader, "Bearer ")
		if credential == "" || credential != principal.CredentialRef {
			as.Logger.Warn("Credential mismatch",
				zap.String("login_name", loginName),
				zap.String("path", path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setupRouter(as *AppState) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add CORS middleware
	router.Use(cors.Default())

	// Add logging middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoint
	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := store.HealthCheck(ctx, as.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"error":     err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"services": gin.H{
				"database": "healthy",
			},
		})
	})

	// Add authentication middleware to API routes
	router.Use(AuthenticationMiddleware(as))

	api := router.Group("/api/v1")
	{
		// User management
		usersGroup := api.Group("/users")
		{
			usersGroup.POST("", createUser(as))
			usersGroup.GET("", listUsers(as))
			usersGroup.GET("/:userId", getUser(as))
			usersGroup.PUT("/:userId", updateUser(as))
			usersGroup.DELETE("/:userId", deleteUser(as))
			usersGroup.GET("/:userId/projects", listUserProjects(as))
			usersGroup.GET("/:userId/tasks", listUserTasks(as))
		}
	}

	return router
}

func setupSignalHandler(as *AppState, server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		// Create context with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Shutdown server
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		// Close database
		if err := as.DB.Close(); err != nil {
			logger.Error("Error closing database", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}

// parseUserID extracts and validates the userId path parameter
func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a positive integer"})
		return 0, false
	}
	return userID, true
}

// User handlers

func createUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()

		var req users.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := as.UserService.CreateUser(c.Request.Context(), req.ToUser())
		if err != nil {
			as.Logger.Error("Failed to create user",
				zap.String("request_id", requestID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if !created {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with this login name already exists"})
			return
		}

		as.Logger.Info("User created",
			zap.String("request_id", requestID),
			zap.Int64("user_id", req.ID),
			zap.String("login_name", req.LoginName))
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "id": req.ID})
	}
}

func listUsers(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		allUsers, err := as.UserService.ListUsers(c.Request.Context())
		if err != nil {
			as.Logger.Error("Failed to list users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}

		reps := users.UsersToRepresentations(allUsers)
		c.JSON(http.StatusOK, gin.H{
			"users": reps,
			"count": len(reps),
		})
	}
}

func getUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		user, err := as.UserService.GetUser(c.Request.Context(), userID)
		if err != nil {
			if users.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			as.Logger.Error("Failed to get user", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
			return
		}

		c.JSON(http.StatusOK, users.UserToRepresentation(user))
	}
}

func updateUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		var rep users.UserRepresentation
		if err := c.ShouldBindJSON(&rep); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// The path parameter names the record being replaced
		rep.ID = userID

		user, err := users.RepresentationToUser(rep)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := as.UserService.UpdateUser(c.Request.Context(), user)
		if err != nil {
			as.Logger.Error("Failed to update user", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func deleteUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		deleted, err := as.UserService.DeleteUser(c.Request.Context(), userID)
		if err != nil {
			as.Logger.Error("Failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func listUserProjects(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		userProjects, err := as.UserService.ListProjectsByUserID(c.Request.Context(), userID)
		if err != nil {
			as.Logger.Error("Failed to list projects", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"projects": projects.ProjectsToRepresentations(userProjects),
			"count":    len(userProjects),
		})
	}
}

func listUserTasks(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		userTasks, err := as.TaskService.ListTasksByUserID(c.Request.Context(), userID)
		if err != nil {
			as.Logger.Error("Failed to list tasks", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tasks": tasks.TasksToRepresentations(userTasks),
			"count": len(userTasks),
		})
	}
}
