package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/format"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrSlotAlreadyBooked:
		response.BadRequest(w, "Time slot already booked for this doctor")
	case usecase.ErrDoctorReference:
		response.BadRequest(w, "Doctor does not exist")
	case usecase.ErrPatientNameRequired:
		response.BadRequest(w, "Patient name is required")
	case usecase.ErrInvalidDate:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrInvalidTime:
		response.BadRequest(w, "Invalid time format, use HH:MM")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *AppointmentHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.AppointmentRequest, bool) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.OK(w, appointment)
}

// GetAllAppointments lists appointments, optionally narrowed by
// ?doctor_id= and ?date=
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filterReq dto.AppointmentFilterRequest
	if raw := query.Get("doctor_id"); raw != "" {
		doctorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid doctor ID")
			return
		}
		filterReq.DoctorID = doctorID
	}
	filterReq.Date = query.Get("date")

	if err := h.validator.Validate(&filterReq); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), &entity.AppointmentFilter{
		DoctorID: filterReq.DoctorID,
		Date:     format.NormalizeDate(filterReq.Date),
	})
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.OK(w, dto.UpdateAppointmentResponse{
		Message:     "Appointment updated",
		Appointment: appointment,
	})
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Message(w, http.StatusOK, "Appointment deleted")
}
