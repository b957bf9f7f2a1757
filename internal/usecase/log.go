package usecase

import (
	"log/slog"

	"github.com/aalvaropc/railinfo/internal/domain"
)

func logFailure(l *slog.Logger, op string, err error) {
	if err == nil {
		return
	}
	kind := string(domain.KindOf(err))
	if kind == "" {
		kind = "unknown"
	}
	l.Warn("lookup.failed", "op", op, "kind", kind, "err", err)
}
