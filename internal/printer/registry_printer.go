package printer

import (
	"fmt"
	"io"

	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
)

// RegistryPrinter renders RegistryViews as human-readable text.
type RegistryPrinter struct {
	headerFunc output.WriteFunc
	footerFunc output.WriteFunc
}

func NewRegistryPrinter() *RegistryPrinter {
	return &RegistryPrinter{
		headerFunc: func(w io.Writer, _ int) {
			_, _ = fmt.Fprintln(w, "")
		},
		footerFunc: func(w io.Writer, _ int) {
			_, _ = fmt.Fprintln(w, "")
		},
	}
}

func (p *RegistryPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *RegistryPrinter) SetHeader(fn output.WriteFunc) {
	p.headerFunc = fn
}

func (p *RegistryPrinter) Item(w io.Writer, view RegistryView) error {
	marker := " "
	if view.Active {
		marker = "*"
	}

	official := ""
	if view.Official {
		official = " (official)"
	}

	_, _ = fmt.Fprintf(w, " %s %s%s\n", marker, view.DisplayName, official)
	_, _ = fmt.Fprintf(w, "   %s · %s\n", view.Name, view.BaseURL)

	return nil
}

func (p *RegistryPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *RegistryPrinter) SetFooter(fn output.WriteFunc) {
	p.footerFunc = fn
}
