package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// Connection string of the shop database this viewer reads from.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// Key used to sign and verify admin tokens.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// The single shared admin password. There is exactly one account.
	AdminPassword string `env:"ADMIN_PASSWORD,required,notEmpty"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3000"`
}
