package contactapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rjreducation/vsdcentre/internal/contact"
	"github.com/rjreducation/vsdcentre/internal/web/platform/httpx"
)

type handlers struct {
	service ContactService
}

func newHandlers(service ContactService) handlers {
	return handlers{service: service}
}

type submitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var input contact.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		_ = httpx.WriteJSON(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Message: "Please check your input and try again.",
			Error:   "invalid JSON body",
		})
		return
	}

	record, err := h.service.Submit(httpx.RequestContext(r), input)
	if err != nil {
		var validationErr *contact.ValidationError
		if errors.As(err, &validationErr) {
			_ = httpx.WriteJSON(w, http.StatusBadRequest, submitResponse{
				Success: false,
				Message: "Please check your input and try again.",
				Error:   validationErr.Error(),
			})
			return
		}
		log.Printf("contactapi: submit failed: %v", err)
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, submitResponse{
			Success: false,
			Message: "An unexpected error occurred. Please try again later.",
		})
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, submitResponse{
		Success:      true,
		Message:      "Thank you for your message! We will get back to you soon.",
		SubmissionID: record.ID,
	})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.List(httpx.RequestContext(r))
	if err != nil {
		log.Printf("contactapi: list failed: %v", err)
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, submitResponse{
			Success: false,
			Message: "Failed to retrieve contact submissions.",
		})
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, submissions)
}
