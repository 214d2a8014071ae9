package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"wot/docs" //this is required to generate swagger docs
	"wot/internal/auth"
	"wot/internal/config"
	"wot/internal/domain/reactions"
	"wot/internal/enrich"
	"wot/internal/geo"
	"wot/internal/metrics"
	"wot/internal/params"
	"wot/internal/ratelimiter"
	"wot/internal/service"
)

type toiletService interface {
	ListToilets(ctx context.Context, in service.ListToiletsInput) ([]enrich.ToiletView, error)
	ListToiletsNearby(ctx context.Context, in service.NearbyInput) ([]enrich.ToiletView, error)
	ListToiletsInBoundingBox(ctx context.Context, box geo.BoundingBox, requester *int64) ([]enrich.ToiletView, error)
	ListToiletsByUser(ctx context.Context, userID int64, state *string, page *params.Page) ([]enrich.ToiletView, error)
	SearchToilets(ctx context.Context, query string, page *params.Page) ([]enrich.ToiletView, error)
	GetToilet(ctx context.Context, id int64) (*enrich.ToiletView, error)
	ReportToilet(ctx context.Context, in service.ReportToiletInput) error
}

type commentService interface {
	ListCommentsByToilet(ctx context.Context, toiletID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error)
	ListCommentsByUser(ctx context.Context, userID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error)
	GetComment(ctx context.Context, id int64) (*enrich.CommentView, error)
	CreateComment(ctx context.Context, in service.CreateCommentInput) (*enrich.CommentView, error)
	DeleteComment(ctx context.Context, id int64) error
	PutReaction(ctx context.Context, in service.ReactionInput) (*enrich.CommentView, error)
	DeleteReaction(ctx context.Context, commentID, userID int64) error
	ListReactions(ctx context.Context, userID int64, commentIDs []int64) ([]reactions.Reaction, error)
}

type viewRefresher interface {
	Refresh(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type application struct {
	config        *config.Config
	logger        *zap.SugaredLogger
	db            pinger
	toilets       toiletService
	comments      commentService
	views         viewRefresher
	authenticator auth.Authenticator
	rateLimiter   *ratelimiter.FixedWindowRateLimiter
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("//%s/v1/swagger/doc.json", app.config.APIURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.With(app.BasicAuthMiddleware()).Handle("/metrics", promhttp.Handler())

		r.Group(func(r chi.Router) {
			r.Use(app.RequesterMiddleware)

			r.Route("/toilets", func(r chi.Router) {
				r.Get("/", app.listToiletsHandler)
				r.Get("/nearby", app.listToiletsNearbyHandler)
				r.Get("/bounding", app.listToiletsInBoundingBoxHandler)
				r.Get("/search/{query}", app.searchToiletsHandler)
				r.Get("/users/{userID}", app.listToiletsByUserHandler)
				r.Post("/reports", app.reportToiletHandler)
				r.Get("/{toiletID}", app.getToiletHandler)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Post("/", app.createCommentHandler)
				r.Get("/toilets/{toiletID}", app.listCommentsByToiletHandler)
				r.Get("/users/{userID}", app.listCommentsByUserHandler)

				r.Route("/reactions", func(r chi.Router) {
					r.Get("/", app.listReactionsHandler)
					r.Post("/", app.putReactionHandler)
					r.Delete("/", app.deleteReactionHandler)
				})

				r.Get("/{commentID}", app.getCommentHandler)
				r.With(app.BasicAuthMiddleware()).Delete("/{commentID}", app.deleteCommentHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = app.config.Version
	docs.SwaggerInfo.Host = app.config.APIURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
