package cmd

// Config holds the application settings loaded from the environment.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Board identifiers for the polling dashboards. The jobs are skipped
	// when these are left empty.
	BoardRestaurantID string `envconfig:"BOARD_RESTAURANT_ID"`
	BoardCourierID    string `envconfig:"BOARD_COURIER_ID"`
}
