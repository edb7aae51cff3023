package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-file-vault/models"
)

// fileRow is one line of the browser: an owned file or a file someone
// shared with the caller.
type fileRow struct {
	ref    models.FileRef
	access string
	owner  string
}

// reference is what the CLI accepts to address the file: the bare id for an
// owned file, "<resource>/<id>" for a shared one.
func (r fileRow) reference() string {
	id := strconv.FormatUint(uint64(r.ref.FileID), 10)
	if r.ref.Owned {
		return id
	}
	return r.ref.Resource.String() + "/" + id
}

func (r fileRow) downloadable() bool {
	return !r.ref.Owned || r.ref.Status == models.FileStatusUploaded
}

// accessLabel summarises how many people besides the caller can read a file.
func accessLabel(others int) string {
	switch others {
	case 0:
		return "Only You"
	case 1:
		return "You & 1 other"
	default:
		return fmt.Sprintf("You & %d others", others)
	}
}

func ownedRows(resource models.ResourceHandle, records []models.FileRecord) []fileRow {
	rows := make([]fileRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, fileRow{
			ref: models.FileRef{
				Resource: resource,
				FileID:   rec.FileID,
				FileName: rec.FileName,
				Owned:    true,
				Status:   rec.Status,
			},
			access: accessLabel(len(rec.SharedWith)),
			owner:  "you",
		})
	}
	return rows
}

// sharedRows flattens files shared with me. The owner counts as one of the
// others who can read the file.
func sharedRows(me models.Principal, shared []models.SharedResource) []fileRow {
	var rows []fileRow
	for _, sr := range shared {
		for _, f := range sr.Files {
			others := 1
			for _, u := range f.SharedWith {
				if u.Principal != me && u.Principal != sr.Owner.Principal {
					others++
				}
			}
			rows = append(rows, fileRow{
				ref: models.FileRef{
					Resource: sr.Resource,
					FileID:   f.FileID,
					FileName: f.FileName,
				},
				access: accessLabel(others),
				owner:  sr.Owner.Username,
			})
		}
	}
	return rows
}

type listModel struct {
	rows    []fileRow
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (fileRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return fileRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) move(delta int) {
	m.idx += delta
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func statusIcon(r fileRow) string {
	if !r.ref.Owned {
		return "[S]"
	}
	switch r.ref.Status {
	case models.FileStatusUploaded:
		return "[F]"
	case models.FileStatusPending:
		return "[R]"
	default:
		return "[~]"
	}
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.rows) == 0 {
		b.WriteString("No files\n")
	} else {
		for i, row := range m.rows {
			line := fmt.Sprintf("%s %-32s %-16s %s", statusIcon(row), fitText(row.ref.FileName, 32), fitText(row.owner, 16), row.access)
			if i == m.idx {
				b.WriteString("> " + selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+humanizeError(m.lastErr)) + "\n")
	}

	return b.String()
}
