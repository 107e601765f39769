package mdparser

import "fmt"

// HTMLAlignDetection controls whether aligned HTML blocks are converted back
// into alignment container directives.
type HTMLAlignDetection string

const (
	// HTMLAlignDetectNone leaves HTML blocks untouched.
	HTMLAlignDetectNone HTMLAlignDetection = "none"
	// HTMLAlignDetectDiv converts single-block
	// <div style="text-align: X">...</div> into the X container directive.
	HTMLAlignDetectDiv HTMLAlignDetection = "div"
)

// Config configures markdown parsing behavior.
type Config struct {
	HTMLAlignDetection HTMLAlignDetection `json:"htmlAlignDetection,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.HTMLAlignDetection == "" {
		c.HTMLAlignDetection = HTMLAlignDetectNone
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.HTMLAlignDetection != HTMLAlignDetectNone && c.HTMLAlignDetection != HTMLAlignDetectDiv {
		return fmt.Errorf("invalid htmlAlignDetection %q", c.HTMLAlignDetection)
	}
	return nil
}
