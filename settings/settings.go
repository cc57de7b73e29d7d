package settings

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	JWT_SECRET_KEY               string
	MONGO_DB                     string
	MONGO_ROOT_USERNAME          string
	MONGO_ROOT_PASSWORD          string
	MONGO_HOST                   string
	MONGO_CONNECTION             string
	NATS_HOST                    string
	AWS_BUCKET                   string
	AWS_REGION                   string
	ELS_HOST                     string
	ELS_PASSWORD                 string
	ELS_PORT                     int
	ELS_USERNAME                 string
	CREDENTIALS_API_URL          string
	CREDENTIALS_SERVICE_USERNAME string
	CREDENTIALS_ISSUANCE_ENABLED bool
	JOURNALS_API_URL             string
	JOURNALS_ENABLED             bool
	VERIFICATION_DAYS            int
	RATE_LIMIT                   int
	PLATFORM_NAME                string
	CLIENT_URL                   string
	NODE_ENV                     string
}

func getEnvInt(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}
	return intValue
}

func getEnvBool(key string) bool {
	return os.Getenv(key) == "true"
}

func newSettings() *settings {
	return &settings{
		JWT_SECRET_KEY:               os.Getenv("JWT_SECRET_KEY"),
		MONGO_DB:                     os.Getenv("MONGO_DB"),
		MONGO_ROOT_USERNAME:          os.Getenv("MONGO_ROOT_USERNAME"),
		MONGO_ROOT_PASSWORD:          os.Getenv("MONGO_ROOT_PASSWORD"),
		MONGO_HOST:                   os.Getenv("MONGO_HOST"),
		MONGO_CONNECTION:             os.Getenv("MONGO_CONNECTION"),
		NATS_HOST:                    os.Getenv("NATS_HOST"),
		ELS_HOST:                     os.Getenv("ELS_HOST"),
		ELS_PORT:                     getEnvInt("ELS_PORT", 9200),
		ELS_PASSWORD:                 os.Getenv("ELS_PASSWORD"),
		ELS_USERNAME:                 os.Getenv("ELS_USERNAME"),
		AWS_BUCKET:                   os.Getenv("AWS_BUCKET"),
		AWS_REGION:                   os.Getenv("AWS_REGION"),
		CREDENTIALS_API_URL:          os.Getenv("CREDENTIALS_API_URL"),
		CREDENTIALS_SERVICE_USERNAME: os.Getenv("CREDENTIALS_SERVICE_USERNAME"),
		CREDENTIALS_ISSUANCE_ENABLED: getEnvBool("CREDENTIALS_ISSUANCE_ENABLED"),
		JOURNALS_API_URL:             os.Getenv("JOURNALS_API_URL"),
		JOURNALS_ENABLED:             getEnvBool("JOURNALS_ENABLED"),
		VERIFICATION_DAYS:            getEnvInt("VERIFICATION_DAYS", 365),
		RATE_LIMIT:                   getEnvInt("RATE_LIMIT", 7),
		PLATFORM_NAME:                os.Getenv("PLATFORM_NAME"),
		CLIENT_URL:                   os.Getenv("CLIENT_URL"),
		NODE_ENV:                     os.Getenv("NODE_ENV"),
	}
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found")
		}
	}
}

func GetSettings() *settings {
	if singleSettingsInstace == nil {
		lock.Lock()
		defer lock.Unlock()
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}
