package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
	"github.com/oijdod/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	UploadAttachment(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", resp)
}

// MyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.MyLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Balance implements LeaveHandler.
func (h *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.Balance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status:     queryStringPtr(r, "status"),
		EmployeeID: queryStringPtr(r, "employee_id"),
	}

	requests, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Review implements LeaveHandler.
func (h *LeaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req leave.ReviewLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.leaveService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed successfully", resp)
}

// UploadAttachment implements LeaveHandler.
func (h *LeaveHandlerImpl) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	url, err := h.leaveService.UploadAttachment(r.Context(), file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attachment uploaded successfully", map[string]string{
		"attachment_url": url,
	})
}
