// Package types defines the wire-level response envelope: every error leaves
// the API as an RFC 7807 problem document.
package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/logger"
)

// Problem is an RFC 7807 error document. Parameters carries request context
// (path, method, timestamp) plus error-specific extras such as field errors
// or a tracking id.
type Problem struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// NewProblem builds a problem document for the given request with the shared
// request-context parameters pre-filled.
func NewProblem(r *http.Request, status int, title, detail string) *Problem {
	return &Problem{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
		Parameters: map[string]any{
			"path":      r.URL.Path,
			"method":    r.Method,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// WriteProblem serializes p with the problem+json media type.
func WriteProblem(w http.ResponseWriter, p *Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// WriteError translates a service error into a problem response. Expected
// failures map onto 4xx documents; anything unrecognized is logged with a
// generated tracking id and reported as an opaque 500 carrying that id.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var p *Problem
	switch appErr.CodeOf(err) {
	case appErr.CodeNotFound:
		p = NewProblem(r, http.StatusNotFound, "Resource Not Found", err.Error())
	case appErr.CodeAlreadyExists:
		p = NewProblem(r, http.StatusConflict, "Resource Already Exists", err.Error())
	case appErr.CodeConflict:
		p = NewProblem(r, http.StatusConflict, "Data Integrity Conflict", err.Error())
	case appErr.CodeInvalid:
		p = NewProblem(r, http.StatusBadRequest, "Validation Failed", err.Error())
		var ae *appErr.AppError
		if errors.As(err, &ae) && ae.Meta != nil {
			if fields, ok := ae.Meta["errors"]; ok {
				p.Parameters["errors"] = fields
			}
		}
	case appErr.CodeUnauthorized:
		p = NewProblem(r, http.StatusUnauthorized, "Authentication Failed", err.Error())
	case appErr.CodeForbidden:
		p = NewProblem(r, http.StatusForbidden, "Access Denied", err.Error())
	case appErr.CodeUnavailable:
		p = NewProblem(r, http.StatusServiceUnavailable, "Dependency Unavailable", err.Error())
	default:
		trackingID := uuid.NewString()
		logger.L().Error("unhandled error",
			zap.String("tracking_id", trackingID),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
		p = NewProblem(r, http.StatusInternalServerError, "Unexpected Server Failure",
			"an internal error occurred; contact support with the tracking id")
		p.Parameters["tracking_id"] = trackingID
	}
	WriteProblem(w, p)
}
