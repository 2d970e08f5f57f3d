package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/api"
	"github.com/avc-dev/shortlink-client/internal/auth"
	"github.com/avc-dev/shortlink-client/internal/config"
	"github.com/avc-dev/shortlink-client/internal/store"
	"github.com/avc-dev/shortlink-client/internal/usecase"
)

// App связывает конфигурацию, клиента провайдера аутентификации,
// клиента бэкенда и оркестраторы команд.
type App struct {
	config  *config.Config
	logger  *zap.Logger
	auth    *auth.Client
	backend *api.Client
	state   *store.LinkState
	link    *usecase.LinkUsecase
}

// New создает новый экземпляр приложения поверх загруженной конфигурации.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	// Сессионное состояние переживает redirect-логин через файл
	sessionStore, err := store.NewFileStore(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	state := store.NewLinkState(sessionStore)
	authClient := auth.NewClient(cfg, logger)
	backend := api.New(cfg.BackendURL.String(), logger)

	// Завершение redirect-логина переносит признак связывания
	// из appState в сессионное состояние
	authClient.OnRedirect(func(appState auth.AppState) {
		if linking, ok := appState["linking"].(bool); ok && linking {
			if err := state.BeginLinking(); err != nil {
				logger.Warn("failed to store linking flag", zap.Error(err))
			}
		}
	})

	return &App{
		config:  cfg,
		logger:  logger,
		auth:    authClient,
		backend: backend,
		state:   state,
		link:    usecase.NewLinkUsecase(backend, authClient, authClient, authClient, state, logger),
	}, nil
}

// Run разбирает аргументы командной строки и выполняет команду.
func Run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("command is required")
	}

	command, rest := args[0], args[1:]

	switch command {
	case "shorten":
		var opts shortenOptions
		return runCommand(command, rest,
			func(fs *flag.FlagSet) {
				fs.StringVar(&opts.alias, "alias", "", "custom alias for the short URL")
				fs.BoolVar(&opts.anon, "anon", false, "send the request anonymously")
			},
			func(app *App, fs *flag.FlagSet) error {
				return app.cmdShorten(opts, fs.Args())
			})
	case "login":
		var noBrowser bool
		return runCommand(command, rest,
			func(fs *flag.FlagSet) {
				fs.BoolVar(&noBrowser, "no-browser", false, "print the login URL instead of opening a browser")
			},
			func(app *App, _ *flag.FlagSet) error {
				return app.cmdLogin(noBrowser)
			})
	case "logout":
		return runCommand(command, rest, nil,
			func(app *App, _ *flag.FlagSet) error {
				return app.cmdLogout()
			})
	case "link":
		var noBrowser bool
		return runCommand(command, rest,
			func(fs *flag.FlagSet) {
				fs.BoolVar(&noBrowser, "no-browser", false, "print the login URL instead of opening a browser")
			},
			func(app *App, _ *flag.FlagSet) error {
				return app.cmdLink(noBrowser)
			})
	case "whoami":
		return runCommand(command, rest, nil,
			func(app *App, _ *flag.FlagSet) error {
				return app.cmdWhoami()
			})
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runCommand регистрирует флаги команды, загружает конфигурацию,
// собирает приложение и выполняет команду.
func runCommand(name string, args []string, setup func(*flag.FlagSet), run func(*App, *flag.FlagSet) error) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if setup != nil {
		setup(fs)
	}

	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	app, err := New(cfg, logger)
	if err != nil {
		return err
	}

	return run(app, fs)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: shortlink <command> [flags] [arguments]

Commands:
  shorten <url>   shorten a URL (flags: -alias, -anon)
  login           sign in through the identity provider
  logout          sign out and clear the local session
  link            link another identity to the current account
  whoami          show the identity of the current session
  help            show this message

Common flags:
  -b <url>        backend base URL
  -a <host:port>  login callback listener address
  -auth-domain, -client-id, -audience
                  identity provider settings
`)
}
