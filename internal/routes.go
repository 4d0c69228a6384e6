package internal

import (
	"net/http"
	"wadboard/internal/controllers"
	"wadboard/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, authController *controllers.AuthController, frontendController *controllers.FrontendController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()
	admin := authController.RequireSession

	routers.Get("/", http.HandlerFunc(frontendController.Index))

	routers.Post("/api/login", http.HandlerFunc(authController.Login))
	routers.Post("/api/logout", http.HandlerFunc(authController.Logout))
	routers.Get("/api/session", http.HandlerFunc(authController.Session))
	routers.Get("/api/state", http.HandlerFunc(apiController.GetState))

	routers.Post("/api/service", admin(http.HandlerFunc(apiController.CreateService)))
	routers.Put("/api/service/{id}", admin(http.HandlerFunc(apiController.UpdateService)))
	routers.Delete("/api/service/{id}", admin(http.HandlerFunc(apiController.DeleteService)))

	routers.Post("/api/link", admin(http.HandlerFunc(apiController.CreateLink)))
	routers.Put("/api/link/{id}", admin(http.HandlerFunc(apiController.UpdateLink)))
	routers.Delete("/api/link/{id}", admin(http.HandlerFunc(apiController.DeleteLink)))

	routers.Post("/api/wol", admin(http.HandlerFunc(apiController.CreateWolTask)))
	routers.Put("/api/wol/{id}", admin(http.HandlerFunc(apiController.UpdateWolTask)))
	routers.Delete("/api/wol/{id}", admin(http.HandlerFunc(apiController.DeleteWolTask)))
	routers.Post("/api/wol/{id}/run", admin(http.HandlerFunc(apiController.RunWol)))

	routers.Put("/api/reorder/{collection}", admin(http.HandlerFunc(apiController.Reorder)))
	return routers
}
