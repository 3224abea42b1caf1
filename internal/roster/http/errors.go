package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

// errorStatus maps every domain error kind to its HTTP status.
var errorStatus = map[domain.Kind]int{
	domain.KindValidation:         http.StatusBadRequest,
	domain.KindDuplicate:          http.StatusConflict,
	domain.KindUnknownReference:   http.StatusBadRequest,
	domain.KindNotFound:           http.StatusNotFound,
	domain.KindInvalidCredentials: http.StatusUnauthorized,
	domain.KindInternal:           http.StatusInternalServerError,
}

// writeError renders err as a rostersdk.ErrorResponse. Internal errors are
// logged with their cause and answered with a generic description.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())
	de := domain.AsError(err)

	status, ok := errorStatus[de.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "error", err)
	}

	httpx.WriteJSON(w, status, rostersdk.ErrorResponse{
		Error:            de.Kind.String(),
		ErrorDescription: de.Message,
		Details:          de.Fields,
		IDs:              de.IDs,
	})
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation(map[string]string{"id": "must be a positive integer"})
	}
	return id, nil
}

// invalidBody reports a request body that could not be decoded.
func invalidBody(err error) error {
	return domain.Validation(map[string]string{"body": err.Error()})
}
