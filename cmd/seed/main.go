package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/config"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/repository"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/seed"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var storeID int64
	var year int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: usuarios aleatorios, 2: empleados aleatorios, 3: requerimientos de la semana, 4: calendario de feriados)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.Int64Var(&storeID, "store-id", 0, "local al que asignar los empleados (0 = sin local)")
	flag.IntVar(&year, "year", 2025, "año del calendario de feriados")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Cargar la configuración
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Crear el pool de conexiones
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open solo arma el pool, no conecta; el ping explícito valida la
	// conexión antes de seguir
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	// Crear el repository
	repo := repository.NewRepository(cfg, dbpool)

	// Ejecutar la operación
	switch op {
	case 0:
		slog.Error("no se especificó operación")
	case 1:
		if n <= 0 {
			slog.Error("la cantidad de usuarios tiene que ser positiva")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("no se pudo generar el usuario aleatorio", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("no se pudo insertar el usuario", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("usuarios insertados", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("la cantidad de empleados tiene que ser positiva")
		} else {
			var store *int64
			if storeID > 0 {
				store = &storeID
			}

			cnt := n
			for i := 0; i < n; i++ {
				emp := utils.GenerateRandomEmployee(store)
				if err := repo.CreateEmployee(emp); err != nil {
					slog.Error("no se pudo insertar el empleado", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("empleados insertados", slog.Int("count", n-cnt))
		}
	case 3:
		seed.SeedRequirements(repo)
	case 4:
		if err := seed.SeedHolidays(repo, year); err != nil {
			slog.Error("no se pudo cargar el calendario de feriados", slog.String("error", err.Error()))
		}
	default:
		slog.Error("operación inválida")
	}
}
