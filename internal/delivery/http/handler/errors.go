package handler

import (
	"encoding/json"
	"net/http"

	"medical-appointment-api/pkg/apperror"
	"medical-appointment-api/pkg/response"
)

// writeError maps a usecase error to its status code. Internal causes never
// reach the client.
func writeError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		response.InternalServerError(w, "")
		return
	}
	response.Error(w, kind.HTTPStatus(), apperror.PublicMessage(err), nil)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
