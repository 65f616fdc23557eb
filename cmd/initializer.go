package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"travelsuzBack/internal/config"
	"travelsuzBack/internal/handlers"
	"travelsuzBack/internal/repositories"
	"travelsuzBack/internal/services"
	"travelsuzBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB

	userRepo  *repositories.UserRepository
	blacklist *repositories.TokenBlacklist

	regionHandler     *handlers.RegionHandler
	hotelHandler      *handlers.HotelHandler
	restaurantHandler *handlers.RestaurantHandler
	travelHandler     *handlers.TravelHandler
	userHandler       *handlers.UserHandler
}

func initializeApp(cfg config.Config, db *sql.DB, redisClient *redis.Client, errorLog, infoLog *log.Logger) *application {
	storage := newStorage(cfg, errorLog)

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	regionRepo := repositories.RegionRepository{DB: db}
	hotelRepo := repositories.HotelRepository{
		DB:       db,
		Images:   &repositories.ImageStore{DB: db, Table: "hotel_images", Parent: "hotel_id"},
		Comments: &repositories.CommentStore{DB: db, Table: "hotel_comments", Parent: "hotel_id"},
	}
	restaurantRepo := repositories.RestaurantRepository{
		DB:       db,
		Images:   &repositories.ImageStore{DB: db, Table: "restaurant_images", Parent: "restaurant_id"},
		Comments: &repositories.CommentStore{DB: db, Table: "restaurant_comments", Parent: "restaurant_id"},
	}
	travelRepo := repositories.TravelRepository{
		DB:       db,
		Images:   &repositories.ImageStore{DB: db, Table: "travel_images", Parent: "travel_id"},
		Comments: &repositories.CommentStore{DB: db, Table: "travel_comments", Parent: "travel_id"},
	}
	userRepo := repositories.UserRepository{DB: db}
	blacklist := repositories.TokenBlacklist{Client: redisClient}

	// Services
	regionService := &services.RegionService{RegionRepo: &regionRepo}
	hotelService := &services.HotelService{HotelRepo: &hotelRepo}
	restaurantService := &services.RestaurantService{RestaurantRepo: &restaurantRepo}
	travelService := &services.TravelService{TravelRepo: &travelRepo}
	hotelComments := &services.CommentService{Store: hotelRepo.Comments}
	restaurantComments := &services.CommentService{Store: restaurantRepo.Comments}
	travelComments := &services.CommentService{Store: travelRepo.Comments}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		Blacklist:    &blacklist,
		TokenManager: tokenManager,
		AccessTTL:    time.Duration(cfg.JWT.AccessTTLHours) * time.Hour,
		RefreshTTL:   time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour,
	}

	// Handlers
	regionHandler := &handlers.RegionHandler{Service: regionService}
	hotelHandler := &handlers.HotelHandler{Service: hotelService, Comments: hotelComments, Storage: storage}
	restaurantHandler := &handlers.RestaurantHandler{Service: restaurantService, Comments: restaurantComments, Storage: storage}
	travelHandler := &handlers.TravelHandler{Service: travelService, Comments: travelComments, Storage: storage}
	userHandler := &handlers.UserHandler{Service: userService, Storage: storage}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		cfg:               cfg,
		db:                db,
		userRepo:          &userRepo,
		blacklist:         &blacklist,
		regionHandler:     regionHandler,
		hotelHandler:      hotelHandler,
		restaurantHandler: restaurantHandler,
		travelHandler:     travelHandler,
		userHandler:       userHandler,
	}
}

func newStorage(cfg config.Config, errorLog *log.Logger) utils.Storage {
	if cfg.Storage.Driver == "s3" {
		s3, err := utils.NewS3Storage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint,
			cfg.Storage.AccessKey, cfg.Storage.SecretKey)
		if err != nil {
			errorLog.Fatal(err)
		}
		return s3
	}
	return &utils.LocalStorage{Dir: cfg.Storage.LocalDir}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
