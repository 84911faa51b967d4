package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/busbooking/api"
	"github.com/Domenick1991/busbooking/config"
	"github.com/Domenick1991/busbooking/internal/auth"
	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/Domenick1991/busbooking/internal/service/registry"
	"github.com/Domenick1991/busbooking/internal/service/timetable"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Registry  *registry.RegistryService
	Booking   booking.BookingUseCase
	Timetable timetable.TimetableUseCase
	Tokens    *auth.TokenManager
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, services Services, log *zap.Logger) error {
	engine := newEngine(cfg, services, log)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(cfg *config.Config, services Services, log *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(api.RequestLogger(log))
	engine.Use(cors.Default())

	authn := api.Authenticate(services.Tokens)

	root := engine.Group("/api")
	api.NewAuthHandler(services.Registry).Register(root.Group("/auth"))
	api.NewUserHandler(services.Registry).Register(root.Group("/users"), authn)
	api.NewRouteHandler(services.Registry).Register(root.Group("/routes"), authn)
	api.NewBusHandler(services.Registry).Register(root.Group("/buses"), authn)
	api.NewBookingHandler(services.Booking).Register(root.Group("/bookings"), authn)
	api.NewTimetableHandler(services.Timetable).Register(root.Group("/timetables"), authn)

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger-spec", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger-spec/openapi.json"),
		)))
	}

	return engine
}
