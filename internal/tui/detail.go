package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-file-vault/models"
)

type detailModel struct {
	row     fileRow
	allowed []models.PublicUser
	loading bool
	err     error
}

func statusName(r fileRow) string {
	if !r.ref.Owned {
		return "shared with you"
	}
	switch r.ref.Status {
	case models.FileStatusUploaded:
		return "uploaded"
	case models.FileStatusPartiallyUploaded:
		return "partially uploaded"
	case models.FileStatusPending:
		return "requested, waiting for upload"
	default:
		return "unknown"
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:      %s\n", m.row.ref.FileName)
	fmt.Fprintf(&b, "Reference: %s\n", m.row.reference())
	fmt.Fprintf(&b, "Owner:     %s\n", m.row.owner)
	fmt.Fprintf(&b, "Status:    %s\n", statusName(m.row))
	fmt.Fprintf(&b, "Access:    %s\n", m.row.access)

	if m.row.ref.Owned {
		b.WriteString("\nShared with:\n")
		switch {
		case m.loading:
			b.WriteString("  loading...\n")
		case m.err != nil:
			b.WriteString("  " + humanizeError(m.err) + "\n")
		case len(m.allowed) == 0:
			b.WriteString("  nobody\n")
		default:
			for _, u := range m.allowed {
				fmt.Fprintf(&b, "  %s (%s)\n", u.Username, u.Principal)
			}
		}
	}

	hotKeys := "g download  c copy ref  esc back"
	if m.row.ref.Owned {
		hotKeys = "g download  d delete  c copy ref  esc back"
	}
	return renderPage(m.row.ref.FileName, b.String(), hotKeys)
}
