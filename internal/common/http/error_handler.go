package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		h.handleDomainError(w, r, domainErr)
		return
	}

	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	h.log.WithFields(ctx, logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"action": "unhandled_error",
	}).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, http.StatusInternalServerError, commonerrors.ErrInternalError.Code(), commonerrors.ErrInternalError.Message(), nil, traceID)
}

func (h *ErrorHandler) handleDomainError(w http.ResponseWriter, r *http.Request, err commonerrors.DomainError) {
	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	domainErr := err
	if traceID != "" && err.TraceID() == "" {
		domainErr = err.WithTraceID(traceID)
	}

	status := domainErr.HTTPStatus()

	fields := logger.Fields{
		"error_code": domainErr.Code(),
		"category":   string(domainErr.Category()),
		"status":     status,
		"action":     "domain_error",
	}

	if status >= http.StatusInternalServerError {
		h.log.WithFields(ctx, fields).Errorf("domain error: %s", domainErr.Error())
	} else if h.log.ShouldLog(logger.DEBUG) {
		h.log.WithFields(ctx, fields).Debugf("domain error: %s", domainErr.Error())
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, status, domainErr.Code(), domainErr.Message(), nil, domainErr.TraceID())
}

func HandleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	NewErrorHandler(log).HandleError(w, r, err)
}
