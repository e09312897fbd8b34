package report

import (
	"context"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/script"
)

// Writer produces a .docx production brief for a finished job.
type Writer interface {
	Write(ctx context.Context, sess config.Session, scr *script.Script) error
}
