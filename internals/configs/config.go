package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración de ambiente. Se construye una sola vez
// en el arranque y se inyecta a los controladores; los handlers nunca leen
// variables de entorno por su cuenta.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// Mercado Pago: el token activo se elige con agency_settings.payment_mode.
	MPAccessTokenTest string
	MPAccessTokenProd string

	CORSOrigins []string
}

// =======================
// ENV LOADER
// =======================
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró .env, usando ENV del sistema")
		} else {
			log.Println("✅ .env cargado")
		}
	} else {
		log.Println("🚀 Corriendo en Railway, usando ENV del sistema")
	}

	cfg := &Config{
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret: GetEnv("JWT_SECRET"),

		MPAccessTokenTest: GetEnv("MP_ACCESS_TOKEN_TEST"),
		MPAccessTokenProd: GetEnv("MP_ACCESS_TOKEN_PROD"),

		CORSOrigins: splitOrigins(GetEnv("CORS_ORIGINS",
			"http://localhost:5173,https://viajescaribe.mx,https://www.viajescaribe.mx")),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está definido; las rutas de administración quedarán inaccesibles")
	}
	if cfg.MPAccessTokenTest == "" && cfg.MPAccessTokenProd == "" {
		log.Println("⚠️ Ningún token de Mercado Pago configurado; el checkout fallará")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
