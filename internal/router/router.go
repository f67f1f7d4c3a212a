// Package router assembles the gin engine: middleware chain, the /api route
// tree and the swagger UI outside production.
package router

import (
	"time"

	"agronat/internal/auth"
	"agronat/internal/config"
	"agronat/internal/handler"
	"agronat/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Deps struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	Redis  *redis.Client
	Tokens *auth.TokenManager

	Auth        *handler.AuthHandler
	Ventas      *handler.VentasHandler
	Charts      *handler.ChartsHandler
	Informes    *handler.InformesHandler
	Productos   *handler.ProductosHandler
	Proveedores *handler.ProveedoresHandler
	Medidas     *handler.MedidasHandler
	Servicios   *handler.ServiciosHandler
	Trabajos    *handler.TrabajosHandler
}

func New(d Deps) *gin.Engine {
	if d.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.Recovery(),
		middleware.ErrorHandler(d.Log),
		middleware.CORS(d.Cfg.FrontendURL),
		middleware.RateLimiter(d.Redis, 300, time.Minute),
	)

	r.GET("/health", handler.Health)
	if d.Cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := middleware.JWTAuth(d.Tokens)
	api := r.Group("/api")

	sales := api.Group("/sales")
	{
		sales.GET("/productos_disponibles", d.Ventas.ProductosDisponibles)
		sales.GET("/buscar_venta/:searchQuery", d.Ventas.Buscar)
		sales.GET("/buscar_venta_detalle/:id_venta", d.Ventas.Detalle)
		sales.POST("/registrar_venta", requireAuth, d.Ventas.Registrar)
		sales.PUT("/update_state/:id", d.Ventas.UpdateEstado)
		sales.GET("/ticket/:id_venta", d.Informes.Ticket)

		sales.GET("/monthly-stats", d.Charts.MonthlyStats)
		sales.GET("/daily-stats", d.Charts.DailyStats)
		sales.GET("/category-stats", d.Charts.CategoryStats)
		sales.GET("/top-products", d.Charts.TopProducts)
	}

	api.GET("/informes", d.Informes.Informes)
	api.GET("/ultimas-ventas", d.Ventas.Ultimas)
	api.GET("/reporte-ventas", requireAuth, d.Informes.ReporteVentas)

	user := api.Group("/user")
	{
		user.POST("/register", d.Auth.Register)
		user.POST("/login", d.Auth.Login)
		user.GET("/profile/:id", requireAuth, d.Auth.Profile)
		user.GET("/list", requireAuth, d.Auth.List)
	}

	product := api.Group("/product")
	{
		product.POST("/register", d.Productos.Registrar)
		product.GET("/list", d.Productos.Listar)
		product.GET("/:id", d.Productos.Obtener)
		product.PUT("/:id", d.Productos.Actualizar)
		product.DELETE("/:id", d.Productos.Eliminar)
	}

	provider := api.Group("/provider")
	{
		provider.POST("/register", d.Proveedores.Registrar)
		provider.POST("/register_products", d.Proveedores.RegistrarDesdeProductos)
		provider.GET("/list", d.Proveedores.Listar)
	}

	measures := api.Group("/measures")
	{
		measures.POST("/register", d.Medidas.RegistrarMedida)
		measures.GET("/list", d.Medidas.ListarMedidas)
	}
	categories := api.Group("/categories")
	{
		categories.POST("/register", d.Medidas.RegistrarCategoria)
		categories.GET("/list", d.Medidas.ListarCategorias)
	}

	servicios := api.Group("/servicios")
	{
		servicios.POST("", d.Servicios.Registrar)
		servicios.GET("", d.Servicios.Listar)
		servicios.PUT("/:id", d.Servicios.Actualizar)
		servicios.DELETE("/:id", d.Servicios.Eliminar)

		servicios.POST("/categorias", d.Servicios.RegistrarCategoria)
		servicios.GET("/categorias", d.Servicios.ListarCategorias)
		servicios.DELETE("/categorias/:id", d.Servicios.EliminarCategoria)
	}

	works := api.Group("/works")
	{
		works.GET("", d.Trabajos.Listar)
		works.GET("/:id", d.Trabajos.Obtener)
		works.POST("/registrar_trabajo", d.Trabajos.Registrar)
		works.PUT("/editar_trabajo/:id", d.Trabajos.Editar)
		works.DELETE("/eliminar_trabajo/:id", d.Trabajos.Eliminar)
	}

	return r
}
