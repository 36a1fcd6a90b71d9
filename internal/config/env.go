package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverSheets = "sheets"
	StoreDriverMemory = "memory"
)

type Env struct {
	AppAddr string
	GinMode string

	StoreDriver   string
	SpreadsheetID string
	StoreTimeout  time.Duration
	Sheets        SheetNames
	SeatCapacity  int

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	TokenFile          string

	JWTSecret            string
	JWTTTL               time.Duration
	OperatorUsername     string
	OperatorPasswordHash string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreDriverSheets)),
		SpreadsheetID: strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID")),
		StoreTimeout:  readDurationSeconds("STORE_TIMEOUT_SECONDS", 15),
		Sheets:        LoadSheetNames(),
		SeatCapacity:  readInt("SEAT_CAPACITY", DefaultSeatCapacity),

		GoogleClientID:     strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_ID")),
		GoogleClientSecret: strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_SECRET")),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/session/callback"),
		TokenFile:          getEnv("TOKEN_FILE", "surubi_session.json"),

		JWTSecret:            getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTTTL:               time.Duration(readInt("JWT_TTL_HOURS", 12)) * time.Hour,
		OperatorUsername:     getEnv("OPERATOR_USERNAME", "operador"),
		OperatorPasswordHash: strings.TrimSpace(os.Getenv("OPERATOR_PASSWORD_HASH")),

		CORSAllowedOrigins: readList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),
	}

	switch env.StoreDriver {
	case StoreDriverSheets:
		if env.SpreadsheetID == "" {
			log.Println("WARNING: GOOGLE_SHEET_ID not set")
		}
		if env.GoogleClientID == "" || env.GoogleClientSecret == "" {
			log.Println("WARNING: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set")
		}
	case StoreDriverMemory:
	default:
		log.Printf("WARNING: unknown STORE_DRIVER %q, using %s", env.StoreDriver, StoreDriverSheets)
		env.StoreDriver = StoreDriverSheets
	}
	if env.SeatCapacity <= 0 {
		env.SeatCapacity = DefaultSeatCapacity
	}
	if env.OperatorPasswordHash == "" {
		log.Println("WARNING: OPERATOR_PASSWORD_HASH not set, operator login disabled")
	}

	return env
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func readInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		return 0
	}
	return time.Duration(value) * time.Second
}

func readList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
