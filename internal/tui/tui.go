package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/models"
)

var (
	ErrUserQuit   = errors.New("user quit")
	errNoServices = errors.New("tui: client services are required")
)

// TUI is the terminal file browser of the vault client.
type TUI struct {
	services    *service.ClientServices
	build       models.AppBuildInfo
	downloadDir string
	logger      *logger.Logger
}

// New creates the browser. Downloads are written to downloadDir, or to the
// working directory when it is empty.
func New(services *service.ClientServices, build models.AppBuildInfo, downloadDir string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	if downloadDir == "" {
		downloadDir = "."
	}
	return &TUI{services: services, build: build, downloadDir: downloadDir, logger: logger}, nil
}

// Browse runs the file browser until the user quits or ctx is done. The
// session must already be resolved.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.services, t.build, t.downloadDir, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(browserModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}

// PromptPassphrase asks for a secret on the terminal with masked echo. It
// renders on stderr so that stdout stays usable for command output.
func PromptPassphrase(ctx context.Context, title string) (string, error) {
	finalModel, err := tea.NewProgram(newPassphraseModel(title), tea.WithContext(ctx), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passphraseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrUserQuit
	}
	return result.value(), nil
}
