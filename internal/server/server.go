package server

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/config"
	"github.com/kalakritam/kalakritam-api/internal/handlers"
	"github.com/kalakritam/kalakritam-api/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	rdb := config.InitRedis()

	r := gin.Default()

	setupRoutes(r, db, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.RedisMiddleware(rdb))
	r.Use(middleware.Metrics())

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", "./uploads")

	public := r.Group("/v1")
	{
		public.POST("/admin/login", handlers.Login)
		public.POST("/contact", handlers.SubmitContact)

		public.GET("/tickets/verify/:number",
			middleware.RateLimit(rdb, 30, time.Minute),
			handlers.VerifyTicket)

		cached := public.Group("")
		cached.Use(middleware.ResponseCache(rdb, time.Minute))
		{
			cached.GET("/gallery", handlers.ListArtworks)
			cached.GET("/gallery/:id", handlers.GetArtwork)
			cached.GET("/workshops", handlers.ListWorkshops)
			cached.GET("/workshops/:id", handlers.GetWorkshop)
			cached.GET("/events", handlers.ListEvents)
			cached.GET("/events/:id", handlers.GetEvent)
			cached.GET("/artists", handlers.ListArtists)
			cached.GET("/artists/:id", handlers.GetArtist)
			cached.GET("/blogs", handlers.ListBlogs)
			cached.GET("/blogs/:id", handlers.GetBlog)
		}
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.CacheInvalidator(rdb))
	{
		admin.GET("/me", handlers.Me)
		admin.POST("/uploads", handlers.UploadImage)

		gallery := admin.Group("/gallery")
		{
			gallery.GET("", handlers.ListArtworks)
			gallery.POST("", handlers.CreateArtwork)
			gallery.PUT("/:id", handlers.UpdateArtwork)
			gallery.DELETE("/:id", handlers.DeleteArtwork)
		}

		workshops := admin.Group("/workshops")
		{
			workshops.GET("", handlers.ListWorkshops)
			workshops.POST("", handlers.CreateWorkshop)
			workshops.PUT("/:id", handlers.UpdateWorkshop)
			workshops.DELETE("/:id", handlers.DeleteWorkshop)
		}

		events := admin.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.POST("", handlers.CreateEvent)
			events.PUT("/:id", handlers.UpdateEvent)
			events.DELETE("/:id", handlers.DeleteEvent)
		}

		artists := admin.Group("/artists")
		{
			artists.GET("", handlers.ListArtists)
			artists.POST("", handlers.CreateArtist)
			artists.PUT("/:id", handlers.UpdateArtist)
			artists.DELETE("/:id", handlers.DeleteArtist)
		}

		blogs := admin.Group("/blogs")
		{
			blogs.GET("", handlers.AdminListBlogs)
			blogs.POST("", handlers.CreateBlog)
			blogs.PUT("/:id", handlers.UpdateBlog)
			blogs.DELETE("/:id", handlers.DeleteBlog)
		}

		contacts := admin.Group("/contacts")
		{
			contacts.GET("", handlers.ListInquiries)
			contacts.PUT("/:id/status", handlers.UpdateInquiryStatus)
			contacts.DELETE("/:id", handlers.DeleteInquiry)
		}

		tickets := admin.Group("/tickets")
		{
			tickets.GET("", handlers.ListTickets)
			tickets.POST("", handlers.CreateTicket)
			tickets.GET("/:id", handlers.GetTicket)
			tickets.PUT("/:id", handlers.UpdateTicket)
			tickets.DELETE("/:id", handlers.DeleteTicket)
			tickets.GET("/:id/qr", handlers.TicketQR)
			tickets.GET("/:id/pdf", handlers.TicketPDF)
		}
	}
}
