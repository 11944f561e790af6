package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DamienCastello/red-dawn-raid/internal/api"
	"github.com/DamienCastello/red-dawn-raid/internal/auth"
	"github.com/DamienCastello/red-dawn-raid/internal/config"
	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/engine"
	"github.com/DamienCastello/red-dawn-raid/internal/logging"
	"github.com/DamienCastello/red-dawn-raid/internal/service"
	"github.com/DamienCastello/red-dawn-raid/internal/storage"
)

// seededRand returns a math/rand source seeded from crypto/rand, so dice and
// weather rolls differ across restarts.
func seededRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		logging.Fatal("failed to seed random source", err, nil)
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", err, nil)
	}

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("failed to open database", err, logging.Fields{"db_path": cfg.DBPath})
	}
	repo := storage.NewSQLiteRepository(db)

	eng := engine.New(seededRand(), cfg.Timings())
	games := service.NewGameService(repo, eng)
	players := service.NewPlayerService(repo)
	authSvc := auth.NewService(repo)

	router := gin.Default()
	handler := api.NewHandler(games, players, authSvc)
	handler.RegisterRoutes(router.Group(constants.RouteAPIPrefix))

	logging.Info("server listening", logging.Fields{constants.LogFieldAddr: cfg.Address})
	if err := router.Run(cfg.Address); err != nil {
		logging.Fatal("server stopped", err, nil)
	}
}
