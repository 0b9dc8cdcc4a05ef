package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP. Storage failures are reported
// without their cause.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, errorResponse) {
	var bulkErr *domain.BulkUpdateError
	if errors.As(err, &bulkErr) {
		status, body := classify(bulkErr.Err)
		if status == http.StatusConflict {
			body.Code = domain.ErrBulkUpdateFailed.Code
			body.Error = domain.ErrBulkUpdateFailed.Message
		}
		if body.Details == nil {
			body.Details = map[string]any{}
		}
		body.Details["orderId"] = bulkErr.OrderID
		return status, body
	}

	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "authentication required", Code: "unauthenticated"}
	case errors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "forbidden", Code: "forbidden"}
	}

	var ineligible *domain.IneligibleItemsError
	if errors.As(err, &ineligible) {
		return http.StatusConflict, errorResponse{
			Error:   domain.ErrIneligibleItems.Message,
			Code:    domain.ErrIneligibleItems.Code,
			Details: map[string]any{"ineligibleItems": ineligible.Items},
		}
	}

	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal_error"}
	}

	switch domainErr.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: domainErr.Code}
	case domain.KindNotFound:
		return http.StatusNotFound, errorResponse{Error: domainErr.Message, Code: domainErr.Code}
	case domain.KindStateConflict:
		if domainErr == domain.ErrPaymentNotConfirmed {
			return http.StatusPaymentRequired, errorResponse{Error: domainErr.Message, Code: domainErr.Code}
		}
		return http.StatusConflict, errorResponse{Error: domainErr.Message, Code: domainErr.Code}
	case domain.KindExternal:
		return http.StatusBadGateway, errorResponse{Error: domainErr.Message, Code: domainErr.Code}
	case domain.KindPersistence:
		return http.StatusServiceUnavailable, errorResponse{Error: "internal error", Code: domainErr.Code}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal_error"}
	}
}
