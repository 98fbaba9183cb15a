package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/domain"
	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

var errorHandlers = []errorHandler{
	invalidArgumentHandler,
	sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeNotFound),
	sentinelHandler(domain.ErrInsufficientFunds, http.StatusBadRequest, gen.ErrorResponseCodeInsufficientFunds),
	sentinelHandler(domain.ErrAlreadyOwned, http.StatusConflict, gen.ErrorResponseCodeAlreadyOwned),
	sentinelHandler(domain.ErrUnavailable, http.StatusServiceUnavailable, gen.ErrorResponseCodeUnavailable),
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{Code: code, Message: message})
}

// ParamErrorHandler answers a path or query parameter the router could not bind.
// It is the ErrorHandlerFunc of the generated router.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument, err.Error())
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// Only the sentinel text reaches the client.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// invalidArgumentHandler keeps the validation reason, dropping any wrapping context.
func invalidArgumentHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrInvalidArgument) {
		return false
	}
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrInvalidArgument.Error()); i >= 0 {
		msg = msg[i:]
	}
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.log(r)
	for _, h := range errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
