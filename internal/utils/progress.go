package utils

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescResolving = "Resolving"
)

// NewProgressBar creates a consistently styled progress bar for walking
// large page sets. Output goes to stderr so report output stays clean.
//
//	bar := utils.NewProgressBar(len(paths), utils.DescResolving)
//	defer bar.Finish()
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}
