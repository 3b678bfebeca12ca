package config

import "testing"

func TestDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "MONGO_URI", "MONGO_DB", "RABBIT_URL", "STATIC_DIR", "APP_ENV"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "interviewAI" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.RabbitURL != "" {
		t.Errorf("RabbitURL = %q, want empty (events off)", cfg.RabbitURL)
	}
	if cfg.StaticDir != "./public" {
		t.Errorf("StaticDir = %q", cfg.StaticDir)
	}
	if cfg.Prod {
		t.Error("Prod must default to false")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "interview_stage")
	t.Setenv("RABBIT_URL", "amqp://guest:guest@mq:5672/")
	t.Setenv("STATIC_DIR", "/srv/app")
	t.Setenv("APP_ENV", "prod")

	cfg := Load()
	if cfg.Port != "8081" || cfg.MongoURI != "mongodb://db:27017" ||
		cfg.MongoDB != "interview_stage" || cfg.RabbitURL != "amqp://guest:guest@mq:5672/" ||
		cfg.StaticDir != "/srv/app" || !cfg.Prod {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
