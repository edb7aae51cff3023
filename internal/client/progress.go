package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/MKhiriev/go-file-vault/models"
)

// progressPrinter draws a single-line download bar, redrawn in place.
type progressPrinter struct {
	w       io.Writer
	name    string
	bar     progress.Model
	started bool
}

func newProgressPrinter(w io.Writer, name string) *progressPrinter {
	return &progressPrinter{
		w:    w,
		name: name,
		bar:  progress.New(progress.WithWidth(30), progress.WithoutPercentage(), progress.WithFillCharacters('#', '.')),
	}
}

func (p *progressPrinter) update(pr models.Progress) {
	p.started = true
	fmt.Fprintf(p.w, "\r%s %s %3.0f%% %s", p.name, p.bar.ViewAs(pr.Fraction()), pr.Fraction()*100, pr.Phase)
}

func (p *progressPrinter) finish() {
	if p.started {
		fmt.Fprintln(p.w)
	}
}
