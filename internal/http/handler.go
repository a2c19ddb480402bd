package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"mentorhub/internal/auth"
	"mentorhub/internal/service"
)

// Options tunes cookie and CORS behavior.
type Options struct {
	CookieSecure bool
	// AllowedOrigins restricts CORS; empty reflects any origin.
	AllowedOrigins []string
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	hackathons service.HackathonService
	learning   service.LearningService
	tokens     *auth.Issuer
	logger     logrus.FieldLogger
	opts       Options
}

func NewHandler(
	users service.UserService,
	hackathons service.HackathonService,
	learning service.LearningService,
	tokens *auth.Issuer,
	logger logrus.FieldLogger,
	opts Options,
) *Handler {
	return &Handler{
		users:      users,
		hackathons: hackathons,
		learning:   learning,
		tokens:     tokens,
		logger:     logger,
		opts:       opts,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	session := h.requireSession()

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
		authGroup.GET("/me", session, h.me)
		authGroup.GET("/all", session, h.allUsers)
		authGroup.GET("/similar-users", session, h.similarUsers)
	}

	hackathons := router.Group("/hackathon", session)
	{
		hackathons.POST("/create", h.createHackathon)
		hackathons.GET("/user-hackathons", h.suggestedHackathons)
		hackathons.GET("/all", h.listHackathons)
	}

	user := router.Group("/user", session)
	{
		user.GET("/roadmap", h.generateRoadmap)
		user.GET("/resources", h.resources)
		user.GET("/getRoadmap", h.storedRoadmap)
		user.GET("/quiz", h.quiz)
	}
}

// NewRouter builds the gin engine with the middleware chain and wraps it in
// CORS handling that allows credentialed requests.
func NewRouter(h *Handler) http.Handler {
	router := gin.New()
	router.Use(
		requestLogger(h.logger),
		gin.CustomRecovery(recoverJSON(h.logger)),
		limitBody(maxBodyBytes),
	)
	h.RegisterRoutes(router)

	corsOpts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
	}
	if len(h.opts.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = h.opts.AllowedOrigins
	} else {
		corsOpts.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(corsOpts).Handler(router)
}
