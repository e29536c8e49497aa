package main

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// progressBar renders candidate search progress. The bar itself is created
// lazily in start, once the candidate count is known.
type progressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w}
}

func (p *progressBar) start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("candidates"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

// add is called concurrently by search workers; ProgressBar locks internally.
func (p *progressBar) add() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressBar) close() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	_ = p.bar.Close()
	_, _ = io.WriteString(p.w, "\n")
}
