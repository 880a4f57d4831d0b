package main

import (
	"log"
	"net/http"

	"github.com/Chaitanya2267/edulink/config"
	"github.com/Chaitanya2267/edulink/handlers"
	"github.com/Chaitanya2267/edulink/middleware"
	"github.com/Chaitanya2267/edulink/storage"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
}

func main() {
	settings := config.Load()

	db, err := config.Connect(settings.DatabaseURL, settings.Debug)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	files, err := storage.New(settings.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	DBHandler := &handlers.DBHandler{DB: db, Settings: settings}
	fileHandler := &handlers.FileHandler{Store: files, MaxUploadBytes: settings.MaxUploadBytes}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", DBHandler.Health)
	mux.HandleFunc("POST /api/auth/login", DBHandler.Login)

	// Users
	mux.HandleFunc("GET /api/users", DBHandler.GetUsers)
	mux.HandleFunc("POST /api/users", DBHandler.CreateUser)

	// Courses
	mux.HandleFunc("GET /api/courses", DBHandler.GetCourses)
	mux.HandleFunc("POST /api/courses", DBHandler.CreateCourse)

	// Files
	mux.HandleFunc("POST /upload", fileHandler.Upload)
	mux.HandleFunc("GET /files", fileHandler.ListFiles)
	mux.HandleFunc("GET /download/{filename}", fileHandler.Download)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(middleware.RequestID(mux))

	serverAddr := "0.0.0.0:" + settings.Port
	log.Printf("listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal(err)
	}
}
