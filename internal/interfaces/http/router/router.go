package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/infrastructure/auth"
	"github.com/pawlig/backend/internal/infrastructure/config"
	"github.com/pawlig/backend/internal/infrastructure/logger"
	"github.com/pawlig/backend/internal/interfaces/http/handler"
	"github.com/pawlig/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler wired into the router
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Shelter  *handler.ShelterHandler
	Vendor   *handler.VendorHandler
	Pet      *handler.PetHandler
	Product  *handler.ProductHandler
	Adoption *handler.AdoptionHandler
	Favorite *handler.FavoriteHandler
	Order    *handler.OrderHandler
	Upload   *handler.UploadHandler
	Refine   *handler.RefineHandler
}

// Config holds router dependencies
type Config struct {
	HTTP           config.HTTPConfig
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Handlers       Handlers
	Logger         *zap.Logger
}

// New builds the gin engine with middleware chains and all route groups.
// Public routes use optional authentication so listings can personalize
// responses for logged-in viewers.
func New(cfg Config) (*gin.Engine, error) {
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return nil, err
		}
	}

	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	engine.GET("/health", cfg.Handlers.System.Health)
	engine.GET("/api/v1/system/ping", cfg.Handlers.System.Ping)

	authRequired := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		Logger:         cfg.Logger,
	})
	authOptional := middleware.OptionalJWTAuthMiddleware(cfg.JWTService)

	// Profile and fulfilment routes are tied to a concrete role; everything
	// else is gated by what the role is allowed to do.
	adminOnly := middleware.RequireRoles(identity.RoleAdmin)
	shelterOnly := middleware.RequireRoles(identity.RoleShelter)
	vendorOnly := middleware.RequireRoles(identity.RoleVendor)

	canManagePets := middleware.RequireCapability(identity.CapManagePets)
	canDecideAdoptions := middleware.RequireCapability(identity.CapDecideAdoptions)
	canManageProducts := middleware.RequireCapability(identity.CapManageProducts)
	canApplyAdoption := middleware.RequireCapability(identity.CapApplyAdoption)
	canFavoritePets := middleware.RequireCapability(identity.CapFavoritePets)
	canPlaceOrders := middleware.RequireCapability(identity.CapPlaceOrders)
	canModerateUsers := middleware.RequireCapability(identity.CapModerateUsers)
	canVerifyPartners := middleware.RequireCapability(identity.CapVerifyPartners)

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", cfg.Handlers.Auth.Register)
		authGroup.POST("/login", cfg.Handlers.Auth.Login)
		authGroup.POST("/refresh", cfg.Handlers.Auth.Refresh)
		authGroup.POST("/logout", authRequired, cfg.Handlers.Auth.Logout)
	}

	me := api.Group("/me", authRequired)
	{
		me.GET("", cfg.Handlers.Auth.Me)
		me.PUT("", cfg.Handlers.Auth.UpdateProfile)
		me.PUT("/password", cfg.Handlers.Auth.ChangePassword)
		me.PUT("/avatar", cfg.Handlers.Auth.SetAvatar)
	}

	shelters := api.Group("/shelters")
	{
		shelters.GET("", cfg.Handlers.Shelter.List)
		shelters.GET("/me", authRequired, shelterOnly, cfg.Handlers.Shelter.GetOwn)
		shelters.PUT("/me", authRequired, shelterOnly, cfg.Handlers.Shelter.UpdateOwn)
		shelters.PUT("/me/logo", authRequired, shelterOnly, cfg.Handlers.Shelter.SetLogo)
		shelters.GET("/:id", cfg.Handlers.Shelter.GetByID)
	}

	vendors := api.Group("/vendors")
	{
		vendors.GET("", cfg.Handlers.Vendor.List)
		vendors.GET("/me", authRequired, vendorOnly, cfg.Handlers.Vendor.GetOwn)
		vendors.PUT("/me", authRequired, vendorOnly, cfg.Handlers.Vendor.UpdateOwn)
		vendors.PUT("/me/logo", authRequired, vendorOnly, cfg.Handlers.Vendor.SetLogo)
		vendors.GET("/:id", cfg.Handlers.Vendor.GetByID)
	}

	pets := api.Group("/pets")
	{
		pets.GET("", authOptional, cfg.Handlers.Pet.ListPublic)
		pets.GET("/mine", authRequired, canManagePets, cfg.Handlers.Pet.ListOwn)
		pets.POST("", authRequired, canManagePets, cfg.Handlers.Pet.Create)
		pets.GET("/:id", authOptional, cfg.Handlers.Pet.GetByID)
		pets.PUT("/:id", authRequired, canManagePets, cfg.Handlers.Pet.Update)
		pets.DELETE("/:id", authRequired, canManagePets, cfg.Handlers.Pet.Delete)
		pets.POST("/:id/adopted", authRequired, canManagePets, cfg.Handlers.Pet.MarkAdopted)
		pets.POST("/:id/relist", authRequired, canManagePets, cfg.Handlers.Pet.Relist)
		pets.POST("/:id/favorite", authRequired, canFavoritePets, cfg.Handlers.Favorite.Toggle)
	}

	products := api.Group("/products")
	{
		products.GET("", cfg.Handlers.Product.ListPublic)
		products.GET("/mine", authRequired, canManageProducts, cfg.Handlers.Product.ListOwn)
		products.POST("", authRequired, canManageProducts, cfg.Handlers.Product.Create)
		products.GET("/:id", cfg.Handlers.Product.GetByID)
		products.PUT("/:id", authRequired, canManageProducts, cfg.Handlers.Product.Update)
		products.PUT("/:id/stock", authRequired, canManageProducts, cfg.Handlers.Product.SetStock)
		products.PUT("/:id/active", authRequired, canManageProducts, cfg.Handlers.Product.SetActive)
		products.DELETE("/:id", authRequired, canManageProducts, cfg.Handlers.Product.Delete)
	}

	adoptions := api.Group("/adoptions", authRequired)
	{
		adoptions.POST("", canApplyAdoption, cfg.Handlers.Adoption.Apply)
		adoptions.GET("/mine", canApplyAdoption, cfg.Handlers.Adoption.ListOwn)
		adoptions.GET("/queue", canDecideAdoptions, cfg.Handlers.Adoption.ListQueue)
		adoptions.GET("/:id", cfg.Handlers.Adoption.GetByID)
		adoptions.POST("/:id/approve", canDecideAdoptions, cfg.Handlers.Adoption.Approve)
		adoptions.POST("/:id/reject", canDecideAdoptions, cfg.Handlers.Adoption.Reject)
	}

	favorites := api.Group("/favorites", authRequired, canFavoritePets)
	{
		favorites.GET("", cfg.Handlers.Favorite.List)
		favorites.GET("/ids", cfg.Handlers.Favorite.ListIDs)
	}

	orders := api.Group("/orders", authRequired)
	{
		orders.POST("", canPlaceOrders, cfg.Handlers.Order.Checkout)
		orders.GET("/mine", cfg.Handlers.Order.ListOwn)
		orders.GET("/vendor", vendorOnly, cfg.Handlers.Order.ListForVendor)
		orders.GET("/:id", cfg.Handlers.Order.GetByID)
		orders.POST("/:id/confirm", vendorOnly, cfg.Handlers.Order.Confirm)
		orders.POST("/:id/ship", vendorOnly, cfg.Handlers.Order.Ship)
		orders.POST("/:id/deliver", vendorOnly, cfg.Handlers.Order.Deliver)
		orders.POST("/:id/cancel", cfg.Handlers.Order.Cancel)
	}

	uploads := api.Group("/uploads", authRequired,
		middleware.RequireRoles(identity.RoleShelter, identity.RoleVendor, identity.RoleAdopter, identity.RoleAdmin))
	{
		uploads.POST("/images", cfg.Handlers.Upload.Upload)
	}

	aiGroup := api.Group("/ai", authRequired,
		middleware.RequireRoles(identity.RoleShelter, identity.RoleVendor))
	{
		aiGroup.POST("/refine-description", cfg.Handlers.Refine.Refine)
	}

	admin := api.Group("/admin", authRequired)
	{
		admin.GET("/users", canModerateUsers, cfg.Handlers.User.List)
		admin.GET("/users/:id", canModerateUsers, cfg.Handlers.User.GetByID)
		admin.POST("/users/:id/block", canModerateUsers, cfg.Handlers.User.Block)
		admin.POST("/users/:id/unblock", canModerateUsers, cfg.Handlers.User.Unblock)
		admin.PUT("/users/:id/role", canModerateUsers, cfg.Handlers.User.ChangeRole)
		admin.GET("/users/:id/audit", canModerateUsers, cfg.Handlers.User.AuditTrail)
		admin.GET("/shelters", canVerifyPartners, cfg.Handlers.Shelter.ListAdmin)
		admin.POST("/shelters/:id/verify", canVerifyPartners, cfg.Handlers.Shelter.Verify)
		admin.POST("/shelters/:id/unverify", canVerifyPartners, cfg.Handlers.Shelter.Unverify)
		admin.GET("/vendors", canVerifyPartners, cfg.Handlers.Vendor.ListAdmin)
		admin.POST("/vendors/:id/verify", canVerifyPartners, cfg.Handlers.Vendor.Verify)
		admin.POST("/vendors/:id/unverify", canVerifyPartners, cfg.Handlers.Vendor.Unverify)
		admin.PATCH("/orders/:id/status", adminOnly, cfg.Handlers.Order.SetStatus)
	}

	return engine, nil
}
