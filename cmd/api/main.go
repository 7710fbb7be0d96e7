package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"notekeep/internal/config"
	"notekeep/internal/domain/memdb"
	"notekeep/internal/domain/memdb/repository"
	"notekeep/internal/http/handler"
	authmw "notekeep/internal/http/middleware"
	"notekeep/internal/service"
	"notekeep/internal/utils/apierror"
	"notekeep/internal/utils/uid"
	"notekeep/internal/utils/validators"
)

const envVarsPrefix = "/notekeep/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	cfg := config.Load()
	uid.Init(cfg.MachineID)

	// Init in-memory store
	db, err := memdb.Init()
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate)
	noteService := service.NewNoteService(noteRepo, userRepo, validate)

	// Getting handlers
	userRoutes := handler.NewUserDefault(userService)
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	keyGate := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		Verifier: authmw.NewStaticKeyVerifier(cfg.APIKey),
	})

	api := e.Group("/api", keyGate)
	api.POST("/login", userRoutes.CreateLogin)
	api.GET("/users/:username/notes", noteRoutes.GetNotes)
	api.POST("/users/:username/notes", noteRoutes.CreateNote)
	api.PUT("/users/:username/notes/:noteId", noteRoutes.UpdateNote)
	api.DELETE("/users/:username/notes/:noteId", noteRoutes.DeleteNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(cfg.Addr); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("usernamechars", validators.UsernameChars)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

// httpErrorHandler keeps every failure on the single-error-string wire
// contract, including panics surfaced by the Recover middleware.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		_ = c.JSON(he.Code, &apierror.APIError{Status: he.Code, Message: msg})
		return
	}

	log.Errorf("unhandled error: %v", err)
	_ = c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
