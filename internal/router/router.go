package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/Archi44444/NeuroSaathi/internal/config"
	"github.com/Archi44444/NeuroSaathi/internal/features"
	"github.com/Archi44444/NeuroSaathi/internal/handlers"
	"github.com/Archi44444/NeuroSaathi/internal/models"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, bank *models.TaskBank) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // set to true behind TLS
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("neuroaid_session", store))
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	authHandler := handlers.NewAuthHandler(log)
	analyzeHandler := handlers.NewAnalyzeHandler(log, features.NewExtractor(features.NewRandomEstimator()))
	resultsHandler := handlers.NewResultsHandler(log)
	tasksHandler := handlers.NewTasksHandler(bank)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.POST("/register", limiter, authHandler.Register)
		api.POST("/login", limiter, authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/tasks", tasksHandler.Tasks)

		authorized := api.Group("/")
		authorized.Use(AuthRequired())
		{
			authorized.POST("/analyze", analyzeHandler.Analyze)
			authorized.GET("/results/my", resultsHandler.MyResults)
			authorized.GET("/results/chart", resultsHandler.TrendChart)
		}
	}

	return router
}
