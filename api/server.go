package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadguard/roadguard-api/event"
	"github.com/roadguard/roadguard-api/external/geoinfo"
	"github.com/roadguard/roadguard-api/logmodule"
	"github.com/roadguard/roadguard-api/schema"
	"github.com/roadguard/roadguard-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.RoadGuardCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// Real-time event fan-out
	hub event.Broker

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	geoClient geoinfo.GeoInfo,
	background *machinery.Server,
	jwtKey *rsa.PrivateKey,
	hub event.Broker) *Server {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
	)

	return &Server{
		store:         store.NewRoadGuardStore(ormDB, mongoStore),
		jwtPrivateKey: jwtKey,
		hub:           hub,
		background:    background,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// every route below requires a valid token and a known account
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	apiRoute.GET("/mechanics", s.listMechanics)
	apiRoute.GET("/events", s.streamEvents)

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.requireRoles(schema.RoleUser), s.createRequest)
		requestRoute.GET("/me", s.requireRoles(schema.RoleUser), s.listMyRequests)
		requestRoute.GET("/pending", s.requireRoles(schema.RoleAdmin), s.listPendingRequests)
		requestRoute.GET("/all", s.requireRoles(schema.RoleAdmin), s.listAllRequests)
		requestRoute.GET("/assigned", s.requireRoles(schema.RoleMechanic), s.listAssignedRequests)
		requestRoute.POST("/:id/assign", s.requireRoles(schema.RoleAdmin), s.assignMechanic)
		requestRoute.POST("/:id/status", s.requireRoles(schema.RoleMechanic, schema.RoleAdmin), s.updateRequestStatus)
		requestRoute.POST("/:id/comments", s.addRequestComment)
		requestRoute.GET("/:id", s.getRequest)
		requestRoute.DELETE("/:id", s.requireRoles(schema.RoleAdmin), s.deleteRequest)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
