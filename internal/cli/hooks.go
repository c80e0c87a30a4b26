package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// chartHooks reports chart progress and file writes to the logger and, when
// attached, the spinner. Jobs run sequentially, so no locking is needed.
type chartHooks struct {
	logger  *log.Logger
	spinner *Spinner
	total   int
	started int
}

func newChartHooks(logger *log.Logger, total int) *chartHooks {
	return &chartHooks{logger: logger, total: total}
}

func (h *chartHooks) OnChartStart(_ context.Context, stem, kind string) {
	h.started++
	if h.spinner != nil {
		h.spinner.SetMessage(fmt.Sprintf("Rendering %d/%d %s", h.started, h.total, stem))
	}
	h.logger.Debug("rendering chart", "stem", stem, "kind", kind)
}

func (h *chartHooks) OnChartComplete(_ context.Context, stem, kind string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("chart failed", "stem", stem, "kind", kind, "code", errors.GetCode(err), "err", errors.UserMessage(err))
		return
	}
	h.logger.Debug("chart done", "stem", stem, "bytes", size, "duration", duration.Round(time.Millisecond))
}

func (h *chartHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "code", errors.GetCode(err), "err", errors.UserMessage(err))
		return
	}
	h.logger.Debug("wrote file", "path", path, "bytes", size)
}
