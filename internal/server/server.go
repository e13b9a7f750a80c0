// Package server exposes the scoring engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/arl/statsviz"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"mahc"
	"mahc/internal/config"
	"mahc/internal/log"
	"mahc/internal/render"
)

const (
	cacheHeader     = "X-Cache"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	conf     config.ServerConf
	defaults config.DefaultsConf
	engine   *gin.Engine
	cache    *ResultCache
}

// New builds a server from the loaded configuration. Call Close when done.
func New(cfg *config.Config) (*Server, error) {
	cache, err := NewResultCache(cfg.Server.Cache.MaxCost, cfg.Server.Cache.TTL)
	if err != nil {
		return nil, err
	}

	s := &Server{
		conf:     cfg.Server,
		defaults: cfg.Defaults,
		engine:   gin.New(),
		cache:    cache,
	}
	s.engine.Use(Recovery(), RequestID(), Logger())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	v1 := s.engine.Group("/v1")
	v1.POST("/score", s.handleScore)
	v1.POST("/calc", s.handleCalc)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Close() {
	s.cache.Close()
}

func (s *Server) handleScore(c *gin.Context) {
	var body ScoreRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, err)
		return
	}
	body = body.withDefaults(s.defaults)

	key := body.cacheKey()
	if v, ok := s.cache.Get(key); ok {
		c.Header(cacheHeader, "HIT")
		c.JSON(http.StatusOK, v)
		return
	}

	req, err := body.Request()
	if err != nil {
		Unprocessable(c, err)
		return
	}
	score, err := req.Score()
	if err != nil {
		log.Debug("score %v: %v", body.Tiles, err)
		Unprocessable(c, err)
		return
	}

	res := render.NewHandResult(score)
	s.cache.Set(key, res)
	c.Header(cacheHeader, "MISS")
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCalc(c *gin.Context) {
	var body CalcRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, err)
		return
	}

	key := body.cacheKey()
	if v, ok := s.cache.Get(key); ok {
		c.Header(cacheHeader, "HIT")
		c.JSON(http.StatusOK, v)
		return
	}

	han, fu := mahc.HanValue(body.Han), mahc.FuValue(body.Fu)
	p, err := mahc.Calculate(han, fu)
	if err != nil {
		Unprocessable(c, err)
		return
	}

	res := render.NewCalcResult(p, mahc.HonbaCounter(body.Honba), han, fu)
	s.cache.Set(key, res)
	c.Header(cacheHeader, "MISS")
	c.JSON(http.StatusOK, res)
}

// Serve listens on the configured address, plus the metrics address when
// one is set, until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	servers := []*http.Server{{Addr: s.conf.Addr, Handler: s.engine}}
	if s.conf.MetricsAddr != "" {
		mux := http.NewServeMux()
		if err := statsviz.Register(mux); err != nil {
			return err
		}
		servers = append(servers, &http.Server{Addr: s.conf.MetricsAddr, Handler: mux})
		log.Info("metrics at http://%s/debug/statsviz/", s.conf.MetricsAddr)
	}
	log.Info("listening on %s", s.conf.Addr)

	g, ctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			return listen(srv)
		})
		g.Go(func() error {
			return shutdown(ctx, srv)
		})
	}
	return g.Wait()
}

func listen(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func shutdown(ctx context.Context, srv *http.Server) error {
	<-ctx.Done()
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
