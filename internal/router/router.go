package router

import (
	"fmt"
	"strings"

	"github.com/reloop-next/internal/cache"
	"github.com/reloop-next/internal/config"
	publichandlers "github.com/reloop-next/internal/http/handlers/public"
	sellerhandlers "github.com/reloop-next/internal/http/handlers/seller"
	"github.com/reloop-next/internal/logger"
	"github.com/reloop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按买家/卖家分组）
	publicHandler := publichandlers.New(c)
	sellerHandler := sellerhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "rl"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.PUT("/me/password", publicHandler.ChangeUserPassword)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.POST("/orders", publicHandler.CreateOrder)
			user.POST("/orders/checkout", publicHandler.CheckoutCart)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}

		// 卖家接口（需鉴权 + RBAC）
		seller := apiV1.Group("/seller")
		seller.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo), UserRBACMiddleware(c.AuthzService))
		{
			seller.GET("/products", sellerHandler.ListProducts)
			seller.POST("/products", sellerHandler.CreateProduct)
			seller.GET("/products/:id", sellerHandler.GetProduct)
			seller.PUT("/products/:id", sellerHandler.UpdateProduct)
			seller.DELETE("/products/:id", sellerHandler.DeleteProduct)
			seller.GET("/orders", sellerHandler.ListOrders)
			seller.PATCH("/orders/:id/status", sellerHandler.UpdateOrderStatus)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
