package main

import (
	"log"

	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("No .env file found")
	}
}

func main() {
	certificatesService := services.NewCertificatesService()
	// Consumers
	certificatesService.ConsumeAwardCourseCertificates()
	certificatesService.ConsumeAwardProgramCertificates()
	certificatesService.ConsumeGetUserCertificates()

	log.Println("Certificates worker listening")
	select {}
}
