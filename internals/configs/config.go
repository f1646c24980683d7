package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	RazorpayKeyID     string
	RazorpayKeySecret string
	TelegramBotToken  string
	TelegramChatID    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	RazorpayKeyID = GetEnv("RAZORPAY_KEY_ID")
	RazorpayKeySecret = GetEnv("RAZORPAY_KEY_SECRET")
	TelegramBotToken = GetEnv("TELEGRAM_BOT_TOKEN")
	TelegramChatID = GetEnv("TELEGRAM_CHAT_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if RazorpayKeyID == "" || RazorpayKeySecret == "" {
		log.Println("❌ RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET is not set!")
	}
	if TelegramBotToken == "" {
		log.Println("⚠️ TELEGRAM_BOT_TOKEN is not set, notifications disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
