package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/avasquez/products-api/app/products"
	"github.com/avasquez/products-api/database"
	"github.com/avasquez/products-api/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := models.NewProductsRepository(db)
	service := products.NewProductService(repo)
	handler := products.NewProductHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", handler.HandleGetAll)
	mux.HandleFunc("GET /api/products/{id}", handler.HandleGetByID)
	mux.HandleFunc("POST /api/products", handler.HandleCreate)
	mux.HandleFunc("PUT /api/products/{id}", handler.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", handler.HandleDelete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
