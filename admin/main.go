package main

import (
	"log"
	"os"

	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/joho/godotenv"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		logger.Fatal("No .env file found")
	}

	cli := commandLine{
		verificationSvc: services.NewVerificationService(),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
