package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/service/anonymous"
)

// Deps are the collaborators of the router.
type Deps struct {
	Visitors      *anonymous.Service
	DB            Pinger
	SessionSecret string
	SessionCookie string
	SessionMaxAge time.Duration
	SecureCookie  bool
	CORSOrigins   []string
}

// buildRouter wires routes for the BFF.
func buildRouter(log *logger.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Visitors == nil {
		return nil, errors.New("httpserver: visitor registry is required")
	}
	if deps.SessionSecret == "" {
		return nil, errors.New("httpserver: session secret is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	store := sessions.NewCookieStore([]byte(deps.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(deps.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   deps.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	cookie := deps.SessionCookie
	if cookie == "" {
		cookie = "guarashopp_visitor"
	}

	api := router.Group("/api", visitorMiddleware(store, cookie, deps.Visitors, log))

	s := api.Group("/session")
	s.GET("", getSession)
	s.POST("/login", login)
	s.POST("/logout", logout)
	s.POST("/register", register)
	s.POST("/forgot-password", forgotPassword)
	s.POST("/reset-password", resetPassword)

	me := api.Group("/me", requireSession())
	me.GET("", getProfile)
	me.PATCH("", updateProfile)
	me.POST("/enderecos", addAddress)
	me.PATCH("/enderecos/:id", updateAddress)
	me.DELETE("/enderecos/:id", deleteAddress)

	cart := api.Group("/cart")
	cart.GET("", getCart)
	cart.POST("/refresh", requireSession(), refreshCart)
	cart.POST("/items", requireSession(), addCartItem)
	cart.PATCH("/items/:id", requireSession(), updateCartItem)
	cart.DELETE("/items/:id", requireSession(), removeCartItem)
	cart.DELETE("", requireSession(), clearCart)

	lay := api.Group("/layout/cart")
	lay.GET("", getCartDrawer)
	lay.POST("/show", showCartDrawer)
	lay.POST("/hide", hideCartDrawer)
	lay.POST("/toggle", toggleCartDrawer)

	alerts := api.Group("/alerts")
	alerts.GET("", listAlerts)
	alerts.POST("", showAlert)
	alerts.DELETE("/:id", hideAlert)

	api.GET("/home", home)
	api.GET("/produtos", listActiveProducts)
	api.GET("/produtos/:id", getProduct)
	api.GET("/categorias", listCategories)

	orders := api.Group("/pedidos", requireSession())
	orders.GET("", myOrders)
	orders.GET("/pagamento/metodos", paymentMethods)
	orders.PATCH("/:id/pagamento", changePaymentMethod)
	orders.POST("/:id/cancelar", cancelOrder)
	api.POST("/checkout", requireSession(), placeOrder)

	admin := api.Group("/admin", requireAdmin())
	admin.GET("/produtos", adminListProducts)
	admin.POST("/produtos", createProduct)
	admin.PATCH("/produtos/:id", updateProduct)
	admin.DELETE("/produtos/:id", deleteProduct)
	admin.POST("/produtos/upload", uploadProductImage)
	admin.GET("/categorias", listCategories)
	admin.POST("/categorias", createCategory)
	admin.PATCH("/categorias/:id", updateCategory)
	admin.DELETE("/categorias/:id", deleteCategory)
	admin.GET("/clientes", listCustomers)
	admin.PATCH("/clientes/:id", updateCustomer)
	admin.PATCH("/clientes/:id/role", setCustomerRole)
	admin.DELETE("/clientes/:id", deactivateCustomer)
	admin.GET("/pedidos", allOrders)

	return router, nil
}
