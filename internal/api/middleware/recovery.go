package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/pkg/logger"
)

// Recovery logs panics with the request id and answers with an opaque 500
// problem document.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.L().Error("panic recovered",
					zap.String("id", GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				p := types.NewProblem(r, http.StatusInternalServerError,
					"Unexpected Server Failure", "the request could not be completed")
				p.Parameters["tracking_id"] = GetRequestID(r.Context())
				types.WriteProblem(w, p)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
