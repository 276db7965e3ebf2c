package main

import (
	"log"

	"backend/internal/api"
)

func main() {
	log.Println("Quotation API start")
	api.StartServer()
	log.Println("Quotation API terminated")
}
