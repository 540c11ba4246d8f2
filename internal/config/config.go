package config

import "os"

type Config struct {
	HTTPAddr     string
	DataPath     string
	RedisAddr    string
	GeminiAPIKey string
	GeminiModel  string
	ServiceName  string
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8081"),
		DataPath:     getenv("DATA_PATH", "warmindo.db"),
		RedisAddr:    os.Getenv("REDIS_ADDR"), // empty = cache disabled
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		ServiceName:  getenv("SERVICE_NAME", "warmindo-pos"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
