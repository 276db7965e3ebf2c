package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var packages []ds.Package
	err = db.Find(&packages).Error
	if err != nil {
		log.Fatal("Failed to get packages:", err)
	}

	fmt.Println("Packages in database:")
	for _, pkg := range packages {
		fmt.Printf("ID: %s, Name: %s, Price: %.2f, Features: %d\n",
			pkg.ID, pkg.Name, pkg.Price, len(pkg.Features))
	}

	var count int64
	if err := db.Model(&ds.Quotation{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count quotations:", err)
	}
	fmt.Printf("Quotations in database: %d\n", count)
}
