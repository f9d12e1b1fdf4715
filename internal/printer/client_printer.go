package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
)

// ClientPrinter renders ClientViews as human-readable text.
type ClientPrinter struct {
	headerFunc output.WriteFunc
	footerFunc output.WriteFunc
}

func NewClientPrinter() *ClientPrinter {
	return &ClientPrinter{
		headerFunc: DefaultClientHeader(),
		footerFunc: DefaultClientFooter(),
	}
}

func (p *ClientPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *ClientPrinter) SetHeader(fn output.WriteFunc) {
	p.headerFunc = fn
}

func (p *ClientPrinter) Item(w io.Writer, view ClientView) error {
	_, _ = fmt.Fprintf(w, "  %s (%s, %s)\n", view.DisplayName, view.ID, view.Category)

	if view.ConfigPath != "" {
		_, _ = fmt.Fprintf(w, "  Config: %s\n", view.ConfigPath)
	}
	if len(view.Servers) > 0 {
		_, _ = fmt.Fprintf(w, "  Servers: %s\n", strings.Join(view.Servers, ", "))
	} else {
		_, _ = fmt.Fprintln(w, "  Servers: none")
	}
	_, _ = fmt.Fprintln(w, "")

	return nil
}

func (p *ClientPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ClientPrinter) SetFooter(fn output.WriteFunc) {
	p.footerFunc = fn
}

func DefaultClientHeader() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, "🖥️  Detected clients...")
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, separator)
		_, _ = fmt.Fprintln(w, "")
	}
}

func DefaultClientFooter() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "🔌 Found %d client%s\n", count, map[bool]string{true: "s"}[count > 1])
		_, _ = fmt.Fprintln(w, "")
	}
}
