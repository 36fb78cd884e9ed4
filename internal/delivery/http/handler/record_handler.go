package handler

import (
	"net/http"

	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

type RecordHandler struct {
	recordUsecase usecase.RecordUsecase
}

func NewRecordHandler(recordUsecase usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{
		recordUsecase: recordUsecase,
	}
}

func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.ListRecords(r.Context(), mux.Vars(r)["userEmail"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"records": records})
}
