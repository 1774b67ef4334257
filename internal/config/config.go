package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa toda la configuración del servicio.
// Todo viene de env vars (con .env opcional cargado desde main).
type Config struct {
	// HTTP
	Port           string `env:"PORT" env-default:"5000"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`

	// Storage. Si DatabaseURL está vacío, el servicio corre con el
	// adapter en memoria (modo dev / tests).
	DatabaseURL   string `env:"DATABASE_URL" env-default:""`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:"migrations"`

	// Archivos subidos (fotos, radiografías).
	UploadDir string `env:"UPLOAD_DIR" env-default:"uploads"`

	// Servicio de autenticación externo (opcional; sin esto el
	// middleware corre en modo dev).
	AuthServiceURL    string `env:"AUTH_SERVICE_URL" env-default:""`
	AuthServiceAPIKey string `env:"AUTH_SERVICE_API_KEY" env-default:""`

	// Logging (los lee también logger.NewFromEnv; acá quedan visibles
	// para /health y diagnósticos).
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	AppName   string `env:"APP_NAME" env-default:"petcare-backend"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	cfg.Port = strings.TrimSpace(cfg.Port)
	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Origins parte CORS_ALLOWED_ORIGINS en una lista limpia.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
