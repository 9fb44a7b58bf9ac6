package server

import (
	"context"
	"net/http"
	"time"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/config"
	"github.com/avolkov/washconv/internal/convert"
	"github.com/avolkov/washconv/internal/deps"
	"github.com/avolkov/washconv/internal/middleware"
	"github.com/avolkov/washconv/internal/model"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

type Store interface {
	SaveCatalog(rows []catalog.PriceRow)
	Catalog() (model.ServiceCatalog, error)
	ItemNames() []string
	DefaultSets() (model.EligibilitySets, error)

	SaveOrders(orders []model.SourceOrder)
	Orders() ([]model.SourceOrder, error)

	SaveResult(res *convert.Result)
	Result() (*convert.Result, error)
}

type Server struct {
	store  Store
	config *config.Config
	deps   *deps.Deps
}

func NewServer(store Store, config *config.Config, deps *deps.Deps) *Server {
	return &Server{
		store:  store,
		config: config,
		deps:   deps,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Post("/api/catalog", srv.UploadCatalogHandler)
	router.Post("/api/orders", srv.UploadOrdersHandler)
	router.Post("/api/convert", srv.ConvertHandler)
	router.Get("/api/logs", srv.LogsHandler)
	router.Get("/api/result.csv", srv.DownloadCSVHandler)
	router.Get("/api/result.xlsx", srv.DownloadXLSXHandler)

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
