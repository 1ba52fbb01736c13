package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"dog-licensing/internal/adapters/auth/cityid"
	"dog-licensing/internal/adapters/auth/jwtlocal"
	"dog-licensing/internal/domain/licensing"
	"dog-licensing/internal/platform/logger"
	"dog-licensing/internal/ports/auth"
	"dog-licensing/internal/router"

	"github.com/joho/godotenv"
)

// @title        Dog Licensing API
// @version      1.0
// @description  Registro municipal de perros y licencias anuales con
// @description  certificado de vacuna antirrábica.
// @BasePath     /
func main() {
	// .env es opcional; en deploy las vars vienen del entorno
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	verifier := buildVerifier(log)

	srv := &http.Server{
		Addr: addr,
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			Fees:         feesFromEnv(),
			Log:          log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// buildVerifier elige el verificador de identidad según env:
// - CITYID_BASE_URL + CITYID_API_KEY => verificación remota contra CityID
// - JWT_SECRET => validación local HS256 con secreto compartido
// - nada => modo dev (header X-Debug-User-ID)
func buildVerifier(log logger.Logger) auth.AuthVerifier {
	if baseURL := os.Getenv("CITYID_BASE_URL"); baseURL != "" {
		client, err := cityid.NewClient(cityid.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("CITYID_API_KEY"),
			Timeout: 5 * time.Second,
		})
		if err != nil {
			log.Error("cityid client config invalid", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		log.Info("auth ready", map[string]any{"verifier": "cityid"})
		return cityid.NewVerifier(client)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		v, err := jwtlocal.NewVerifier(secret, os.Getenv("JWT_ISSUER"))
		if err != nil {
			log.Error("jwt verifier config invalid", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		log.Info("auth ready", map[string]any{"verifier": "jwt"})
		return v
	}

	log.Warn("no verifier configured, running in dev mode", nil)
	return nil
}

// feesFromEnv permite ajustar la ordenanza tarifaria sin tocar código.
func feesFromEnv() licensing.FeeSchedule {
	fees := licensing.DefaultFeeSchedule()
	if v, err := strconv.Atoi(os.Getenv("LICENSE_FEE_SPAYED_NEUTERED")); err == nil && v > 0 {
		fees.FeeSpayedNeutered = v
	}
	if v, err := strconv.Atoi(os.Getenv("LICENSE_FEE_INTACT")); err == nil && v > 0 {
		fees.FeeIntact = v
	}
	if v, err := strconv.Atoi(os.Getenv("LICENSE_PERIOD_DAYS")); err == nil && v > 0 {
		fees.PeriodDays = v
	}
	return fees
}
