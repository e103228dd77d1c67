// Package cli implements the interactive notes client: a small REPL that
// talks to the backend over HTTP and caches the auth token on disk.
package cli

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mayankt25/backend/internal/client/api"
	"github.com/mayankt25/backend/internal/client/config"
)

type App struct {
	config    *config.Config
	api       *api.Client
	userEmail string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewClient(c.ServerAddr)

	app := &App{
		config: c,
		api:    client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// A cached token from a previous session keeps the user signed in.
	if token := app.loadToken(); token != "" {
		client.SetToken(token)
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) loadToken() string {
	if a.config.TokenFile == "" {
		return ""
	}
	data, err := os.ReadFile(a.config.TokenFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// saveToken caches the token for the next session. Failures are not fatal:
// the session simply will not survive the process.
func (a *App) saveToken(token string) {
	if a.config.TokenFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(a.config.TokenFile), 0o700); err != nil {
		return
	}
	os.WriteFile(a.config.TokenFile, []byte(token), 0o600)
}

func (a *App) clearToken() {
	a.api.SetToken("")
	a.userEmail = ""
	if a.config.TokenFile != "" {
		os.Remove(a.config.TokenFile)
	}
}
