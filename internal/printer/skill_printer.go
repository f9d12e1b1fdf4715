package printer

import (
	"fmt"
	"io"

	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
)

// SkillPrinter renders SkillViews as human-readable text.
type SkillPrinter struct {
	headerFunc output.WriteFunc
	footerFunc output.WriteFunc
}

func NewSkillPrinter() *SkillPrinter {
	return &SkillPrinter{
		headerFunc: DefaultSkillHeader(),
		footerFunc: DefaultSkillFooter(),
	}
}

func (p *SkillPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *SkillPrinter) SetHeader(fn output.WriteFunc) {
	p.headerFunc = fn
}

func (p *SkillPrinter) Item(w io.Writer, view SkillView) error {
	_, _ = fmt.Fprintf(w, "  %s (%s)\n", view.Name, view.ID)

	if view.Description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", view.Description)
	}
	_, _ = fmt.Fprintf(w, "  Source: %s · %d installs\n", view.Source, view.Installs)
	_, _ = fmt.Fprintln(w, "")

	return nil
}

func (p *SkillPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *SkillPrinter) SetFooter(fn output.WriteFunc) {
	p.footerFunc = fn
}

func DefaultSkillHeader() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, "✨ Agent skills...")
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, separator)
		_, _ = fmt.Fprintln(w, "")
	}
}

func DefaultSkillFooter() output.WriteFunc {
	return func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "🎯 Found %d skill%s\n", count, map[bool]string{true: "s"}[count > 1])
		_, _ = fmt.Fprintln(w, "")
	}
}
