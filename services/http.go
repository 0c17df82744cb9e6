package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/kelimeapp/vocab_api/services/handlers"
	"github.com/kelimeapp/vocab_api/shared"
)

type HttpService struct {
	context.DefaultService

	visitorSvc   *VisitorService
	wordSvc      *WordService
	favoriteSvc  *FavoriteService
	translateSvc *TranslateService
	rateLimitSvc *RateLimitService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.visitorSvc = svc.Service(VISITOR_SVC).(*VisitorService)
	svc.wordSvc = svc.Service(WORD_SVC).(*WordService)
	svc.favoriteSvc = svc.Service(FAVORITE_SVC).(*FavoriteService)
	svc.translateSvc = svc.Service(TRANSLATE_SVC).(*TranslateService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)

	svc.app = fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
	})

	svc.app.Use(recover.New())

	if os.Getenv("LOG_LEVEL") == "TRACE" {
		svc.app.Use(logger.New())
	}

	svc.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	svc.registerRoutes()

	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	_ = svc.app.Shutdown()
}

func (svc *HttpService) registerRoutes() {
	visitorHandler := handlers.NewVisitorHandler(svc.visitorSvc)
	wordHandler := handlers.NewWordHandler(svc.wordSvc)
	favoriteHandler := handlers.NewFavoriteHandler(svc.favoriteSvc)
	translateHandler := handlers.NewTranslateHandler(svc.translateSvc)

	svc.app.Get("/ping", svc.ping)

	svc.app.Use(svc.rateLimitSvc.IPRateLimit())

	visitors := svc.app.Group("/visitors")
	visitors.Post("/init", svc.rateLimitSvc.RateLimit("visitor_init"), visitorHandler.InitVisitor)
	visitors.Post("/update-preferences", visitorHandler.UpdatePreferences)
	visitors.Get("/:id", visitorHandler.GetVisitor)

	words := svc.app.Group("/words")
	words.Get("/random", wordHandler.RandomWords)
	words.Get("/:id", wordHandler.GetWord)

	myWords := svc.app.Group("/mywords")
	myWords.Post("/toggle", svc.rateLimitSvc.RateLimit("favorite_toggle"), favoriteHandler.ToggleFavorite)
	myWords.Get("/:visitorId", favoriteHandler.ListFavorites)

	svc.app.Get("/languages", wordHandler.ListSourceLanguages)
	svc.app.Get("/target-languages", wordHandler.ListTargetLanguages)
	svc.app.Get("/categories", wordHandler.ListCategories)

	svc.app.Post("/translate", svc.rateLimitSvc.RateLimit("translate"), translateHandler.Translate)

	svc.app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(errors.New("page not found"), "Not found")
	})
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "pong")
}

// handleError maps typed error kinds onto the envelope. Internal causes are
// logged here and replaced with a generic message.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.WithError(appErr.Err).WithField("path", c.Path()).Error("Request failed")
			return shared.ResponseErrorJSON(c, appErr.StatusCode, "Something went wrong")
		}
		return shared.ResponseErrorJSON(c, appErr.StatusCode, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseErrorJSON(c, fiberErr.Code, fiberErr.Message)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseErrorJSON(c, http.StatusInternalServerError, "Something went wrong")
}
