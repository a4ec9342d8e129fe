package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort             string
	MongoURI            string
	MongoDBName         string
	CognitoUserPoolID   string
	CognitoClientID     string
	CognitoClientSecret string
	Region              string
	RedisHost           string
	RedisPort           int
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	redisPort, err := strconv.Atoi(os.Getenv("REDIS_PORT"))
	if err != nil {
		redisPort = 6379
	}

	return Config{
		AppPort:             getEnv("APP_PORT", "3004"),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGODB_DB_NAME", "task_management"),
		CognitoUserPoolID:   os.Getenv("COGNITO_USER_POOL_ID"),
		CognitoClientID:     os.Getenv("COGNITO_CLIENT_ID"),
		CognitoClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),
		Region:              getEnv("AWS_REGION", "us-east-1"),
		RedisHost:           os.Getenv("REDIS_HOST"),
		RedisPort:           redisPort,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
