package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.resolveLanguage)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	staffMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))
	createMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(app.cfg.Permissions.CreateRole))
	updateMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(app.cfg.Permissions.UpdateRole))

	mux := pat.New()

	// Hotels
	mux.Get("/hotels", standardMiddleware.ThenFunc(app.hotelHandler.GetHotels))
	mux.Post("/hotels", createMiddleware.ThenFunc(app.hotelHandler.CreateHotel))
	mux.Get("/hotels/:id/comments", standardMiddleware.ThenFunc(app.hotelHandler.GetHotelComments))
	mux.Post("/hotels/:id/comments", standardMiddleware.ThenFunc(app.hotelHandler.CreateHotelComment))
	mux.Get("/hotels/:id", standardMiddleware.ThenFunc(app.hotelHandler.GetHotelByID))
	mux.Put("/hotels/:id", updateMiddleware.ThenFunc(app.hotelHandler.UpdateHotel))
	mux.Add("PATCH", "/hotels/:id", updateMiddleware.ThenFunc(app.hotelHandler.UpdateHotel))
	mux.Del("/hotels/:id", authMiddleware.ThenFunc(app.hotelHandler.DeleteHotel))

	// Restaurants
	mux.Get("/restaurants", standardMiddleware.ThenFunc(app.restaurantHandler.GetRestaurants))
	mux.Post("/restaurants", createMiddleware.ThenFunc(app.restaurantHandler.CreateRestaurant))
	mux.Get("/restaurants/:id/comments", standardMiddleware.ThenFunc(app.restaurantHandler.GetRestaurantComments))
	mux.Post("/restaurants/:id/comments", standardMiddleware.ThenFunc(app.restaurantHandler.CreateRestaurantComment))
	mux.Get("/restaurants/:id", standardMiddleware.ThenFunc(app.restaurantHandler.GetRestaurantByID))
	mux.Put("/restaurants/:id", updateMiddleware.ThenFunc(app.restaurantHandler.UpdateRestaurant))
	mux.Add("PATCH", "/restaurants/:id", updateMiddleware.ThenFunc(app.restaurantHandler.UpdateRestaurant))
	mux.Del("/restaurants/:id", authMiddleware.ThenFunc(app.restaurantHandler.DeleteRestaurant))

	// Travels
	mux.Get("/travels", standardMiddleware.ThenFunc(app.travelHandler.GetTravels))
	mux.Post("/travels", createMiddleware.ThenFunc(app.travelHandler.CreateTravel))
	mux.Get("/travels/:id/comments", standardMiddleware.ThenFunc(app.travelHandler.GetTravelComments))
	mux.Post("/travels/:id/comments", standardMiddleware.ThenFunc(app.travelHandler.CreateTravelComment))
	mux.Get("/travels/:id", standardMiddleware.ThenFunc(app.travelHandler.GetTravelByID))
	mux.Put("/travels/:id", updateMiddleware.ThenFunc(app.travelHandler.UpdateTravel))
	mux.Add("PATCH", "/travels/:id", updateMiddleware.ThenFunc(app.travelHandler.UpdateTravel))
	mux.Del("/travels/:id", authMiddleware.ThenFunc(app.travelHandler.DeleteTravel))

	// Regions
	mux.Get("/regions", standardMiddleware.ThenFunc(app.regionHandler.GetRegions))
	mux.Post("/regions", authMiddleware.ThenFunc(app.regionHandler.CreateRegion))
	mux.Put("/regions/:id", authMiddleware.ThenFunc(app.regionHandler.UpdateRegion))
	mux.Del("/regions/:id", authMiddleware.ThenFunc(app.regionHandler.DeleteRegion))

	// Users
	mux.Post("/users/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/users/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/users/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Put("/users/update", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Add("PATCH", "/users/update", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Get("/users", staffMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Del("/users/:id", staffMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Uploaded files (local storage driver). The JSON middleware pre-sets
	// Content-Type, which the file server would otherwise keep; drop it so
	// images get their real MIME type.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.cfg.Storage.LocalDir)))
	mux.Get("/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del("Content-Type")
		uploads.ServeHTTP(w, r)
	}))

	return standardMiddleware.Then(mux)
}
