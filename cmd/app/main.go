package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"trattoria/cmd"
	httpadapter "trattoria/internal/adapters/in/http"
	"trattoria/internal/adapters/out/postgres/menurepo"
	"trattoria/internal/adapters/out/postgres/orderrepo"
	"trattoria/internal/adapters/out/postgres/reservationrepo"
	"trattoria/internal/adapters/out/postgres/testimonialrepo"
	"trattoria/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	waitForDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&reservationrepo.ReservationDTO{},
		&menurepo.MenuItemDTO{},
		&menurepo.TimelineEntryDTO{},
		&menurepo.AwardDTO{},
		&testimonialrepo.TestimonialDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// waitForDatabase verifies the database accepts connections before gorm
// starts issuing migrations.
func waitForDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreateReservationCommandHandler(),
		app.CreateUpdateReservationStatusCommandHandler(),
		app.CreateCreateTestimonialCommandHandler(),
		app.CreateApproveTestimonialCommandHandler(),
		app.CreateGetMenuItemsQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderByNumberQueryHandler(),
		app.CreateGetAllReservationsQueryHandler(),
		app.CreateGetTestimonialsQueryHandler(),
		app.CreateGetTimelineQueryHandler(),
		app.CreateGetAwardsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api")

	e.GET("/ws", echo.WrapHandler(app.CreateWebsocketHandler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
