package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	Port          string
	AppAuthKey    string
	AppEncKey     string
	CSRFKey       string
	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string
	QuoteNotifyTo string
	APP_ENV       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		Port:          os.Getenv("APP_PORT"),
		AppAuthKey:    os.Getenv("APP_AUTH_KEY"),
		AppEncKey:     os.Getenv("APP_ENC_KEY"),
		CSRFKey:       os.Getenv("APP_CSRF_KEY"),
		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     os.Getenv("EMAIL_PORT"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),
		QuoteNotifyTo: os.Getenv("QUOTE_NOTIFY_TO"),
		APP_ENV:       os.Getenv("APP_ENV"),
	}

	// Missing database settings are only warned about here; the connection
	// attempt reports the real failure.
	if env.DBHost == "" || env.DBName == "" {
		log.Println("Warning: DB_HOST/DB_NAME not set, database calls will fail")
	}
	if env.Port == "" {
		env.Port = ":8080"
	}

	return env
}

var LoadENV = LoadEnv()
