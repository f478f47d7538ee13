package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap/zapcore"
)

func isTerminal(w zapcore.WriteSyncer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
