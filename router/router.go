package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	jwt echo.MiddlewareFunc,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Profile(echo.Context) error
	},
	courseCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	materialCtrl interface {
		Upload(echo.Context) error
		IngestURL(echo.Context) error
		ListByCourse(echo.Context) error
		Delete(echo.Context) error
	},
	settingsCtrl interface {
		Get(echo.Context) error
		Upsert(echo.Context) error
	},
	planCtrl interface {
		Generate(echo.Context) error
		GetByWeek(echo.Context) error
		ListByCourse(echo.Context) error
		Update(echo.Context) error
		Regenerate(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
		Providers(echo.Context) error
	},
	healthCtrl interface{ Check(echo.Context) error },
	uploadDir string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Check)
	e.Static("/uploads", uploadDir)

	api := e.Group("/api")
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/auth/profile", authCtrl.Profile, jwt)

	courses := api.Group("/courses", jwt)
	courses.POST("", courseCtrl.Create)
	courses.GET("", courseCtrl.List)
	courses.GET("/:id", courseCtrl.Get)
	courses.PUT("/:id", courseCtrl.Update)
	courses.DELETE("/:id", courseCtrl.Delete)

	materials := api.Group("/materials", jwt)
	materials.POST("", materialCtrl.Upload)
	materials.POST("/url", materialCtrl.IngestURL)
	materials.GET("/course/:courseId", materialCtrl.ListByCourse)
	materials.DELETE("/:id", materialCtrl.Delete)

	settings := api.Group("/settings", jwt)
	settings.GET("/course/:courseId", settingsCtrl.Get)
	settings.POST("/course/:courseId", settingsCtrl.Upsert)

	planning := api.Group("/planning", jwt)
	planning.GET("/providers", planCtrl.Providers)
	planning.POST("/generate", planCtrl.Generate)
	planning.GET("/course/:courseId/week/:weekNumber", planCtrl.GetByWeek)
	planning.GET("/course/:courseId", planCtrl.ListByCourse)
	planning.PUT("/:id", planCtrl.Update)
	planning.POST("/:id/regenerate", planCtrl.Regenerate)
	planning.DELETE("/:id", planCtrl.Delete)
	planning.GET("/:id/export", planCtrl.Export)

	return e
}
