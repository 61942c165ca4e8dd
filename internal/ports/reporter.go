package ports

import (
	"io"

	"github.com/mikey/deliverability-scorer/internal/core"
)

// Reporter renders a score result for a scored email
type Reporter interface {
	// Report writes the result to w
	Report(w io.Writer, email *core.Email, result *core.ScoreResult) error
}
