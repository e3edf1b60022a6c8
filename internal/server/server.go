package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/salesavor/salesavor/internal/config"
	"github.com/salesavor/salesavor/internal/foodguide"
	foodguidedomain "github.com/salesavor/salesavor/internal/foodguide/domain"
	"github.com/salesavor/salesavor/internal/grocerylist"
	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
	"github.com/salesavor/salesavor/internal/observability"
	obsmiddleware "github.com/salesavor/salesavor/internal/observability/logger"
	obsmetrics "github.com/salesavor/salesavor/internal/observability/metrics"
	obstracing "github.com/salesavor/salesavor/internal/observability/tracing"
	"github.com/salesavor/salesavor/internal/profile"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
	"github.com/salesavor/salesavor/internal/providers/email"
	"github.com/salesavor/salesavor/internal/providers/llm"
	"github.com/salesavor/salesavor/internal/ratelimit"
	"github.com/salesavor/salesavor/internal/recipe"
	recipedomain "github.com/salesavor/salesavor/internal/recipe/domain"
	"github.com/salesavor/salesavor/internal/sale"
	saledomain "github.com/salesavor/salesavor/internal/sale/domain"
	"github.com/salesavor/salesavor/internal/store"
	storedomain "github.com/salesavor/salesavor/internal/store/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	store.Module,
	sale.Module,
	recipe.Module,
	grocerylist.Module,
	profile.Module,
	foodguide.Module,
	llm.Module,
	email.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	genID         *snowflake.Node
	storeSvc      storedomain.Service
	saleSvc       saledomain.Service
	recipeSvc     recipedomain.Service
	grocerySvc    grocerydomain.Service
	profileSvc    profiledomain.Service
	foodGuideSvc  foodguidedomain.Service
	emailProvider email.Provider
	recipeLimiter *ratelimit.RecipeGenLimiter
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	GenID         *snowflake.Node
	StoreSvc      storedomain.Service
	SaleSvc       saledomain.Service
	RecipeSvc     recipedomain.Service
	GrocerySvc    grocerydomain.Service
	ProfileSvc    profiledomain.Service
	FoodGuideSvc  foodguidedomain.Service
	EmailProvider email.Provider
	RecipeLimiter *ratelimit.RecipeGenLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		genID:         p.GenID,
		storeSvc:      p.StoreSvc,
		saleSvc:       p.SaleSvc,
		recipeSvc:     p.RecipeSvc,
		grocerySvc:    p.GrocerySvc,
		profileSvc:    p.ProfileSvc,
		foodGuideSvc:  p.FoodGuideSvc,
		emailProvider: p.EmailProvider,
		recipeLimiter: p.RecipeLimiter,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/", s.Root)

	// -------- Stores --------
	api.POST("/stores/nearby", s.FindNearbyStores)
	api.GET("/stores/:id/sales", s.GetStoreSales)

	// -------- Recipes --------
	api.POST("/recipes/generate", s.GenerateRecipes)

	// -------- Grocery list --------
	api.POST("/grocery-list/generate", s.GenerateGroceryList)
	api.POST("/email-grocery-list", s.EmailGroceryList)

	// -------- Profiles --------
	api.POST("/profile", s.CreateProfile)
	api.GET("/profile/:id", s.GetProfile)
	api.PUT("/profile/:id", s.UpdateProfile)
	api.DELETE("/profile/:id", s.DeleteProfile)

	// -------- Food guide --------
	api.GET("/food-guide/:country", s.GetFoodGuide)
}

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Grocery Savings App API"})
}
