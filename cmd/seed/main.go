package main

import (
	"log"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatal("Seed failed:", err)
	}
}
