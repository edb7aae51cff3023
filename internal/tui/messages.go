package tui

import (
	"github.com/MKhiriev/go-file-vault/models"
)

type filesLoadedMsg struct {
	rows []fileRow
	err  error
}

type allowedUsersMsg struct {
	fileID models.FileID
	users  []models.PublicUser
	err    error
}

type downloadProgressMsg struct {
	progress models.Progress
}

type downloadDoneMsg struct {
	path string
	err  error
}

type deleteDoneMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
