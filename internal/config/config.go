package config

import "os"

type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RabbitURL string // empty disables event publishing
	StaticDir string
	Prod      bool
}

func Load() Config {
	return Config{
		Port:      getenv("APP_PORT", "3000"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getenv("MONGO_DB", "interviewAI"),
		RabbitURL: getenv("RABBIT_URL", ""),
		StaticDir: getenv("STATIC_DIR", "./public"),
		Prod:      getenv("APP_ENV", "dev") == "prod",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
