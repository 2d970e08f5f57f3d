package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию клиента: адрес бэкенда, параметры
// провайдера аутентификации и пути к файлам сессионного состояния.
type Config struct {
	BackendURL   URLPrefix      `env:"SHORTLINK_BACKEND_URL"`
	AuthDomain   string         `env:"SHORTLINK_AUTH_DOMAIN"`
	ClientID     string         `env:"SHORTLINK_AUTH_CLIENT_ID"`
	Audience     string         `env:"SHORTLINK_AUTH_AUDIENCE"`
	CallbackAddr NetworkAddress `env:"SHORTLINK_CALLBACK_ADDRESS"`
	SessionPath  string         `env:"SHORTLINK_SESSION_PATH"`
	TokenPath    string         `env:"SHORTLINK_TOKEN_PATH"`
}

// Load загружает конфигурацию: значения по умолчанию, затем переменные
// окружения, затем флаги командной строки (флаги имеют приоритет).
// fs может быть nil, если переопределение флагами не требуется.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	stateDir := defaultStateDir()

	cfg := &Config{
		BackendURL:   URLPrefix("http://localhost:8000"),
		CallbackAddr: NetworkAddress{Host: "localhost", Port: 8085},
		SessionPath:  filepath.Join(stateDir, "session.json"),
		TokenPath:    filepath.Join(stateDir, "token.json"),
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if fs != nil {
		fs.Var(&cfg.BackendURL, "b", "base URL of the shortening backend")
		fs.Var(&cfg.CallbackAddr, "a", "address for the login callback listener")
		fs.StringVar(&cfg.AuthDomain, "auth-domain", cfg.AuthDomain, "identity provider domain")
		fs.StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "identity provider client ID")
		fs.StringVar(&cfg.Audience, "audience", cfg.Audience, "API audience for issued tokens")

		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ValidateAuth проверяет, что заданы обязательные параметры провайдера
// аутентификации. Вызывается только командами, которым нужен вход.
func (c *Config) ValidateAuth() error {
	if c.AuthDomain == "" {
		return fmt.Errorf("auth domain is required (SHORTLINK_AUTH_DOMAIN)")
	}
	if c.ClientID == "" {
		return fmt.Errorf("auth client ID is required (SHORTLINK_AUTH_CLIENT_ID)")
	}
	return nil
}

// defaultStateDir возвращает каталог для сессионных файлов.
// Состояние живёт не дольше сессии, поэтому при недоступности
// пользовательского кеша используется временный каталог.
func defaultStateDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "shortlink")
}
