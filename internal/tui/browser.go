package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/models"
)

type browserScreen int

const (
	screenList browserScreen = iota
	screenDetail
	screenConfirmDelete
	screenError
	screenAbout
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests; the system clipboard is not
// available in headless runs.
var writeClipboard = clipboard.WriteAll

type browserModel struct {
	ctx         context.Context
	services    *service.ClientServices
	build       models.AppBuildInfo
	downloadDir string
	logger      *logger.Logger

	screen  browserScreen
	list    listModel
	detail  detailModel
	overlay string

	downloading bool
	download    models.Progress
	bar         progress.Model
	progressCh  chan models.Progress
}

func newBrowserModel(ctx context.Context, services *service.ClientServices, build models.AppBuildInfo, downloadDir string, logger *logger.Logger) browserModel {
	return browserModel{
		ctx:         ctx,
		services:    services,
		build:       build,
		downloadDir: downloadDir,
		logger:      logger,
		list:        newListModel(),
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadFiles())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filesLoadedMsg:
		m.list.loading = false
		m.list.lastErr = msg.err
		if msg.err == nil {
			m.list.rows = msg.rows
			m.list.move(0)
		}
		return m, nil
	case allowedUsersMsg:
		if m.screen == screenDetail && m.detail.row.ref.FileID == msg.fileID {
			m.detail.loading = false
			m.detail.allowed = msg.users
			m.detail.err = msg.err
		}
		return m, nil
	case downloadProgressMsg:
		m.download = msg.progress
		return m, waitForProgress(m.progressCh)
	case downloadDoneMsg:
		m.downloading = false
		m.progressCh = nil
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.list.status = "Saved to " + msg.path
		return m, clearStatusAfter(statusTTL)
	case deleteDoneMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.screen = screenList
		m.list.status = "File deleted"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadFiles(), clearStatusAfter(statusTTL))
	case copiedMsg:
		if msg.err != nil {
			m.list.status = "Copy failed: " + msg.err.Error()
		} else {
			m.list.status = "Copied " + msg.text
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.screen = screenList
			m.overlay = ""
		}
		return m, nil
	case screenAbout:
		if key.Matches(msg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	case screenConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.cmdDelete(m.detail.row)
		case key.Matches(msg, keys.no):
			m.screen = screenDetail
		}
		return m, nil
	case screenDetail:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.download):
			return m.startDownload(m.detail.row)
		case key.Matches(msg, keys.copy):
			return m, cmdCopy(m.detail.row.reference())
		case key.Matches(msg, keys.delete):
			if m.detail.row.ref.Owned {
				m.screen = screenConfirmDelete
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.refresh):
		m.list.loading = true
		m.list.lastErr = nil
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadFiles())
	case key.Matches(msg, keys.about):
		m.screen = screenAbout
	case key.Matches(msg, keys.enter):
		row, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.screen = screenDetail
		m.detail = detailModel{row: row, loading: row.ref.Owned}
		if row.ref.Owned {
			return m, m.cmdLoadAllowed(row.ref.FileID)
		}
	case key.Matches(msg, keys.download):
		if row, ok := m.list.current(); ok {
			return m.startDownload(row)
		}
	case key.Matches(msg, keys.copy):
		if row, ok := m.list.current(); ok {
			return m, cmdCopy(row.reference())
		}
	}

	return m, nil
}

func (m browserModel) showError(err error) browserModel {
	m.screen = screenError
	m.overlay = humanizeError(err)
	return m
}

func (m browserModel) startDownload(row fileRow) (tea.Model, tea.Cmd) {
	if m.downloading {
		return m, nil
	}
	if !row.downloadable() {
		m.list.status = "Not uploaded yet"
		return m, clearStatusAfter(statusTTL)
	}

	m.downloading = true
	m.download = models.Progress{Phase: models.ProgressInitializing}
	m.progressCh = make(chan models.Progress, 1)
	return m, tea.Batch(m.cmdDownload(row, m.progressCh), waitForProgress(m.progressCh))
}

func (m browserModel) cmdLoadFiles() tea.Cmd {
	return func() tea.Msg {
		var rows []fileRow

		if resource, err := m.services.Session.Resource(); err == nil {
			owned, err := m.services.SharingService.ListOwned(m.ctx)
			if err != nil {
				return filesLoadedMsg{err: err}
			}
			rows = append(rows, ownedRows(resource, owned)...)
		}

		shared, err := m.services.SharingService.ListSharedIn(m.ctx)
		if err != nil {
			return filesLoadedMsg{err: err}
		}
		rows = append(rows, sharedRows(m.services.Session.Current().Principal, shared)...)

		return filesLoadedMsg{rows: rows}
	}
}

func (m browserModel) cmdLoadAllowed(fileID models.FileID) tea.Cmd {
	return func() tea.Msg {
		users, err := m.services.SharingService.AllowedUsers(m.ctx, fileID)
		return allowedUsersMsg{fileID: fileID, users: users, err: err}
	}
}

func (m browserModel) cmdDelete(row fileRow) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.services.SharingService.Delete(m.ctx, row.ref.FileID)}
	}
}

// cmdDownload fetches and decrypts the file, then saves it. Progress is
// published on ch without blocking; ch is closed when the download ends.
func (m browserModel) cmdDownload(row fileRow, ch chan models.Progress) tea.Cmd {
	return func() tea.Msg {
		defer close(ch)

		file, err := m.services.TransferService.Download(m.ctx, row.ref, func(p models.Progress) {
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- p:
			default:
			}
		})
		if err != nil {
			return downloadDoneMsg{err: err}
		}

		path, err := saveFile(m.downloadDir, file)
		if err != nil {
			m.logger.Err(err).Str("file", file.FileName).Msg("error saving downloaded file")
		}
		return downloadDoneMsg{path: path, err: err}
	}
}

func waitForProgress(ch chan models.Progress) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return downloadProgressMsg{progress: p}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// saveFile writes file into dir without overwriting existing files: a
// taken name gets a " (n)" suffix before its extension.
func saveFile(dir string, file models.DownloadedFile) (string, error) {
	name := filepath.Base(file.FileName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "download"
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("error creating %s: %w", path, err)
		}
		if _, err = f.Write(file.Contents); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("error writing %s: %w", path, err)
		}
		return path, f.Close()
	}
}

func (m browserModel) View() string {
	switch m.screen {
	case screenError:
		return appStyle.Render(errorOverlayModel{message: m.overlay}.View())
	case screenAbout:
		return appStyle.Render(renderBuildInfoWindow(m.build))
	case screenConfirmDelete:
		return appStyle.Render(confirmModel{message: m.detail.row.ref.FileName}.View())
	case screenDetail:
		return appStyle.Render(m.detail.View() + m.downloadView())
	}

	title := "VAULT"
	if user := m.services.Session.Current().User; user != nil {
		title += "  " + user.Username
	}
	body := m.list.View() + m.downloadView()
	return appStyle.Render(renderPage(title, body, "enter open  g download  c copy ref  r refresh  v about  q quit"))
}

func (m browserModel) downloadView() string {
	if !m.downloading {
		return ""
	}
	label := string(m.download.Phase)
	if m.download.TotalChunks > 0 {
		label = fmt.Sprintf("%s %d/%d", label, m.download.CurrentChunk, m.download.TotalChunks)
	}
	return "\n" + m.bar.ViewAs(m.download.Fraction()) + "  " + label + "\n"
}
