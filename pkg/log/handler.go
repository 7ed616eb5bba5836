package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	fgerrors "github.com/YuminosukeSato/framegen/pkg/errors"
)

// ErrFmtHandler is a slog handler that expands the error attribute of a
// record: it adds the stacktrace recorded by cockroachdb/errors and lifts the
// fields of framegen's typed errors (catalog index, failing path, rejected
// parameter) into their own attributes so they can be queried.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err != nil {
		r.AddAttrs(errorDetails(err)...)
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// errorDetails returns the extra attributes for err. The outermost typed error
// of each kind wins.
func errorDetails(err error) []slog.Attr {
	var attrs []slog.Attr
	if st := extractStacktrace(err); st != "" {
		attrs = append(attrs, slog.String(StacktraceAttrKey, st))
	}

	var catErr *fgerrors.CatalogError
	if fgerrors.As(err, &catErr) {
		attrs = append(attrs, slog.Int(CatalogIndexKey, catErr.Index))
	}
	var ioErr *fgerrors.IOError
	if fgerrors.As(err, &ioErr) {
		attrs = append(attrs,
			slog.String(ErrOpKey, ioErr.Op),
			slog.String(ErrPathKey, ioErr.Path),
		)
	}
	var valErr *fgerrors.ValidationError
	if fgerrors.As(err, &valErr) {
		attrs = append(attrs, slog.String(ErrParamKey, valErr.ParamName))
	}
	return attrs
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
