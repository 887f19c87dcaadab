package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenPath      string
	AppAuthKey     string
	AppEncKey      string
	SoundPlayer    string
	SoundConfirm   string
	SoundSuccess   string
	SoundError     string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		RequestTimeout: getDurationEnv("API_TIMEOUT_SECONDS", 10*time.Second),
		TokenPath:      getEnv("TOKEN_PATH", ".store-admin-session"),
		AppAuthKey:     os.Getenv("APP_AUTH_KEY"),
		AppEncKey:      os.Getenv("APP_ENC_KEY"),
		SoundPlayer:    os.Getenv("SOUND_PLAYER"),
		SoundConfirm:   os.Getenv("SOUND_CONFIRM"),
		SoundSuccess:   os.Getenv("SOUND_SUCCESS"),
		SoundError:     os.Getenv("SOUND_ERROR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		log.Printf("Warning: invalid %s=%q, using default", key, v)
		return fallback
	}
	return time.Duration(secs) * time.Second
}
