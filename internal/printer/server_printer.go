package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
)

const separator = "────────────────────────────────────────────"

// ServerPrinter renders ServerViews as human-readable text.
type ServerPrinter struct {
	headerFunc output.WriteFunc
	footerFunc output.WriteFunc
}

func NewServerPrinter() *ServerPrinter {
	return &ServerPrinter{
		headerFunc: DefaultServerHeader(),
		footerFunc: DefaultServerFooter(),
	}
}

func (p *ServerPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *ServerPrinter) SetHeader(fn output.WriteFunc) {
	p.headerFunc = fn
}

func (p *ServerPrinter) Item(w io.Writer, view ServerView) error {
	_, _ = fmt.Fprintf(w, "  %s (%s)\n", view.DisplayName, view.Name)

	if view.Description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", view.Description)
	}
	if len(view.Packages) > 0 {
		_, _ = fmt.Fprintf(w, "  Packages: %s\n", strings.Join(view.Packages, ", "))
	}
	if view.Stars != nil {
		line := fmt.Sprintf("  ★ %d", *view.Stars)
		if view.Activity != "" {
			line += fmt.Sprintf(" · %s", view.Activity)
		}
		if view.LastCommit != "" {
			line += fmt.Sprintf(" · last commit %s", view.LastCommit)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	if len(view.InstalledIn) > 0 {
		_, _ = fmt.Fprintf(w, "  Installed in: %s\n", strings.Join(view.InstalledIn, ", "))
	}
	_, _ = fmt.Fprintln(w, "")

	return nil
}

func (p *ServerPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ServerPrinter) SetFooter(fn output.WriteFunc) {
	p.footerFunc = fn
}

func DefaultServerHeader() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, "🔎 Registry search results...")
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, separator)
		_, _ = fmt.Fprintln(w, "")
	}
}

func DefaultServerFooter() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "📦 Found %d server%s\n", count, map[bool]string{true: "s"}[count > 1])
		_, _ = fmt.Fprintln(w, "")
	}
}
