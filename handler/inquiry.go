package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/brian-dev01/WDD-Server/domain/model"
)

type createInquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	EventDate string `json:"eventDate"`
	UserID    string `json:"userId"`
}

// parseEventDate accepts RFC 3339 or a bare date.
func parseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// CreateInquiry handles POST /api/inquiries.
//
//	@Summary		Submit an inquiry
//	@Description	Creates an inquiry with a server-generated id.
//	@Tags			inquiries
//	@Accept			json
//	@Produce		json
//	@Param			inquiry	body		createInquiryRequest	true	"Inquiry to create"
//	@Success		200		{object}	model.Inquiry
//	@Failure		500		{object}	map[string]string
//	@Router			/api/inquiries [post]
func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req createInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Failed to create inquiry", err)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" || req.EventDate == "" {
		respondError(w, "Failed to create inquiry", fmt.Errorf("missing required field"))
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		respondError(w, "Failed to create inquiry", err)
		return
	}

	inquiry := &model.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		EventDate: eventDate,
		UserID:    req.UserID,
	}

	if err := h.ds.SaveInquiry(inquiry); err != nil {
		respondError(w, "Failed to create inquiry", err)
		return
	}

	writeJSON(w, http.StatusOK, inquiry)
}

// GetInquiries handles GET /api/inquiries.
//
//	@Summary		List inquiries
//	@Description	Returns all inquiries, newest first.
//	@Tags			inquiries
//	@Produce		json
//	@Success		200	{array}		model.Inquiry
//	@Failure		500	{object}	map[string]string
//	@Router			/api/inquiries [get]
func (h *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.ds.GetInquiries()
	if err != nil {
		respondError(w, "Failed to fetch inquiries", err)
		return
	}

	if inquiries == nil {
		inquiries = []model.Inquiry{}
	}

	writeJSON(w, http.StatusOK, inquiries)
}

// DeleteInquiry handles DELETE /api/inquiries/{id}.
//
//	@Summary		Delete an inquiry
//	@Tags			inquiries
//	@Produce		json
//	@Param			id	path		string	true	"Inquiry id"
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/api/inquiries/{id} [delete]
func (h *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ds.DeleteInquiry(id); err != nil {
		respondError(w, "Failed to delete inquiry", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Inquiry deleted successfully"})
}
