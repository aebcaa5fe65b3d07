package progress

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// barTemplate shows caption, counters, bar, percent and strides per second.
const barTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{speed . }}`

// ProgressBar wrapper structure
type ProgressBar struct {
	*pb.ProgressBar
}

// NewProgressBar - instantiate and start a progress bar over total steps.
// A nil writer keeps the pb default (stderr).
func NewProgressBar(total int64, w io.Writer) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	if w != nil {
		bar.SetWriter(w)
	}

	// Strides are slow at large buffer sizes, a fast refresh keeps the ETA honest
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(barTemplate)

	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}
