package engine

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config хранит параметры запуска сервиса.
// Заполняется из окружения с префиксом MAJESTY_ (MAJESTY_PORT, MAJESTY_SEED...).
type Config struct {
	// Port - HTTP/WebSocket порт
	Port string `default:"8080"`

	// Seed - зерно колоды. 0 = случайное (от времени запуска).
	Seed int64 `default:"0"`

	// CatalogPath - YAML с переопределениями каталога действий (пусто = встроенный)
	CatalogPath string `split_words:"true"`

	// TurnTimeout - тайм-аут хода игрока
	TurnTimeout time.Duration `split_words:"true" default:"60s"`
}

// LoadConfig читает окружение и подставляет случайное зерно при нулевом.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("majesty", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
