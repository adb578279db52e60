package handler

import (
	"context"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type mockDoctorUsecase struct {
	CreateFn func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetFn    func(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	ListFn   func(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error)
	UpdateFn func(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.CreateFn(ctx, req)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	return m.GetFn(ctx, id)
}

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.UpdateFn(ctx, id, req)
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type mockAppointmentUsecase struct {
	CreateFn func(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetFn    func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	ListFn   func(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	UpdateFn func(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.CreateFn(ctx, req)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return m.GetFn(ctx, id)
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.UpdateFn(ctx, id, req)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type mockAuthUsecase struct {
	RegisterFn       func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	LoginFn          func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LogoutFn         func(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshTokenFn   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUserFn func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.RegisterFn(ctx, req)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.LoginFn(ctx, req)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	return m.LogoutFn(ctx, userID, accessTokenID, refreshToken)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.RefreshTokenFn(ctx, req)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return m.GetCurrentUserFn(ctx, userID)
}
