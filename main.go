package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"

	"travelworld-backend/cache"
	"travelworld-backend/config"
	"travelworld-backend/handlers"
	"travelworld-backend/routes"
	"travelworld-backend/services"
	"travelworld-backend/utils"
)

var (
	server      *gin.Engine
	ctx         context.Context
	mongoclient *mongo.Client
	cfg         *config.Config
	logger      *logrus.Logger

	bookingCollection     *mongo.Collection
	destinationCollection *mongo.Collection
	analyticsCollection   *mongo.Collection

	bookingService      services.BookingService
	notificationService services.NotificationService
	analyticsService    services.AnalyticsService
	destinationService  services.DestinationService

	BookingHandler      handlers.BookingHandler
	ContactHandler      handlers.ContactHandler
	AnalyticsHandler    handlers.AnalyticsHandler
	DestinationsHandler handlers.DestinationsHandler
	AdminHandler        handlers.AdminHandler

	BookingRouteHandler     routes.BookingRouteHandler
	ContactRouteHandler     routes.ContactRouteHandler
	AnalyticsRouteHandler   routes.AnalyticsRouteHandler
	DestinationRouteHandler routes.DestinationRouteHandler
	AdminRouteHandler       routes.AdminRouteHandler
)

func init() {
	ctx = context.TODO()

	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	logger = logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	lumberjackLog := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		LocalTime:  true,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, lumberjackLog))

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	mongoclient, err = mongo.Connect(ctx, mongoconn)
	if err != nil {
		panic(err)
	}

	if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}

	fmt.Println("MongoDB successfully connected...")

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress)
	if err != nil {
		log.Fatal("JaegerTraceProvider failed to Initialize", err)
	}
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	db := mongoclient.Database("TravelWorld")
	bookingCollection = db.Collection("bookings")
	destinationCollection = db.Collection("destinations")
	analyticsCollection = db.Collection("analytics")

	mailer := utils.NewSMTPMailer(cfg, logger)
	destinationCache := cache.New(cfg, logger, tracer)
	destinationCache.Ping()

	bookingService = services.NewBookingServiceImpl(bookingCollection, mailer, logger, tracer)
	notificationService = services.NewNotificationServiceImpl(mailer, logger, tracer)
	analyticsService = services.NewAnalyticsServiceImpl(analyticsCollection, tracer)
	destinationService = services.NewDestinationServiceImpl(destinationCollection, destinationCache, logger, tracer)

	BookingHandler = handlers.NewBookingHandler(bookingService, cfg, logger)
	ContactHandler = handlers.NewContactHandler(notificationService, cfg, logger)
	AnalyticsHandler = handlers.NewAnalyticsHandler(analyticsService, logger)
	DestinationsHandler = handlers.NewDestinationsHandler(destinationService, logger)
	AdminHandler = handlers.NewAdminHandler(bookingService, destinationService, analyticsService, mailer, cfg, logger)

	BookingRouteHandler = routes.NewBookingRouteHandler(BookingHandler)
	ContactRouteHandler = routes.NewContactRouteHandler(ContactHandler)
	AnalyticsRouteHandler = routes.NewAnalyticsRouteHandler(AnalyticsHandler)
	DestinationRouteHandler = routes.NewDestinationRouteHandler(DestinationsHandler)
	AdminRouteHandler = routes.NewAdminRouteHandler(AdminHandler, DestinationsHandler, cfg)

	server = gin.Default()
}

func main() {
	defer mongoclient.Disconnect(ctx)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.SiteURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Admin-Key")

	server.Use(cors.New(corsConfig))

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "TravelWorld backend is running"})
	})

	BookingRouteHandler.BookingRoute(router)
	ContactRouteHandler.ContactRoute(router)
	AnalyticsRouteHandler.AnalyticsRoute(router)
	DestinationRouteHandler.DestinationRoute(router)
	AdminRouteHandler.AdminRoute(router)

	err := server.Run(":8080")
	if err != nil {
		fmt.Println(err)
		return
	}
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
