package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which previews are hidden.
	LayoutCompactWidth = 100

	// CardWidth is the outer width of a feature card.
	CardWidth = 34

	// PreviewWidth is the outer width of a neighbouring card preview.
	PreviewWidth = 24
)

// Timing constants.
const (
	// DefaultFrameInterval paces redraws while animations run.
	DefaultFrameInterval = time.Second / 30
)
