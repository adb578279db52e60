package handler

import (
	"encoding/json"
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrDoctorInUse:
		response.BadRequest(w, "Cannot delete doctor with existing appointments")
	case usecase.ErrDoctorNameRequired:
		response.BadRequest(w, "Doctor name is required")
	case usecase.ErrInvalidSpecialty:
		response.BadRequest(w, "Invalid doctor role")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create doctor")
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get doctor")
		return
	}

	response.OK(w, doctor)
}

// GetAllDoctors lists doctors, optionally narrowed by ?role=
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	filterReq := dto.DoctorFilterRequest{Role: r.URL.Query().Get("role")}
	if err := h.validator.Validate(&filterReq); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), &entity.DoctorFilter{Role: entity.Specialty(filterReq.Role)})
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.OK(w, doctors)
}

// UpdateDoctor serves PUT /doctors/{id} and PUT /doctors with doctorId in
// the body. A path id wins over the body.
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	id := req.DoctorID.Int64()
	if _, hasPathID := muxVar(r, "id"); hasPathID {
		pid, err := pathID(r)
		if err != nil {
			response.BadRequest(w, "Invalid doctor ID")
			return
		}
		id = pid
	}
	if id <= 0 {
		response.BadRequest(w, "Doctor ID is required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update doctor")
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete doctor")
		return
	}

	response.Message(w, http.StatusOK, "Doctor deleted")
}
