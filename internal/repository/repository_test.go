package repository

import (
	"testing"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_SlotIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAppointmentRepository()
	doctor := testutil.SeedDoctor(t, db, "Dr. Ann Lee", entity.SpecialtyDentist)

	require.NoError(t, repo.Create(db, &entity.Appointment{PatientName: "Jane", DoctorID: doctor.ID, Date: "2024-05-01", Time: "09:00"}))

	err := repo.Create(db, &entity.Appointment{PatientName: "John", DoctorID: doctor.ID, Date: "2024-05-01", Time: "09:00"})
	assert.Error(t, err, "the unique slot index must reject a second booking")
}

func TestAppointmentRepository_ForeignKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAppointmentRepository()
	doctors := NewDoctorRepository()

	err := repo.Create(db, &entity.Appointment{PatientName: "Jane", DoctorID: 404, Date: "2024-05-01", Time: "09:00"})
	assert.Error(t, err)

	doctor := testutil.SeedDoctor(t, db, "Dr. Ann Lee", entity.SpecialtyDentist)
	testutil.SeedAppointment(t, db, "Jane", doctor.ID, "2024-05-01", "09:00")

	_, err = doctors.Delete(db, doctor.ID)
	assert.Error(t, err, "a referenced doctor must not be deletable")
}

func TestAppointmentRepository_FindBySlot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAppointmentRepository()
	doctor := testutil.SeedDoctor(t, db, "Dr. Ann Lee", entity.SpecialtyDentist)
	booked := testutil.SeedAppointment(t, db, "Jane", doctor.ID, "2024-05-01", "09:00")

	found, err := repo.FindBySlot(db, doctor.ID, "2024-05-01", "09:00", 0)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booked.ID, found.ID)

	found, err = repo.FindBySlot(db, doctor.ID, "2024-05-01", "09:00", booked.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := repo.CountByDoctorID(db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAppointmentRepository_Details(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAppointmentRepository()
	doctor := testutil.SeedDoctor(t, db, "Dr. Ann Lee", entity.SpecialtyDentist)
	booked := testutil.SeedAppointment(t, db, "Jane", doctor.ID, "2024-05-01", "09:00")

	detail, err := repo.FindDetailByID(db, booked.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.DoctorName)
	assert.Equal(t, "Dr. Ann Lee", *detail.DoctorName)
	assert.Equal(t, "Dentist", *detail.DoctorRole)
	assert.False(t, detail.IsOrphaned())

	missing, err := repo.FindDetailByID(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAllDetails(db, &entity.AppointmentFilter{Date: "2024-05-02"})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDoctorRepository_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewDoctorRepository()

	doctor := &entity.Doctor{Name: "Dr. Ann Lee", Role: entity.SpecialtyDentist}
	require.NoError(t, repo.Create(db, doctor))
	require.NotZero(t, doctor.ID)

	doctor.Name = "Dr. Ann Park"
	require.NoError(t, repo.Update(db, doctor))

	found, err := repo.FindByID(db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ann Park", found.Name)

	deleted, err := repo.Delete(db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	found, err = repo.FindByID(db, doctor.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	user := &entity.User{FirstName: "Ann", LastName: "Lee", Email: "ann@clinic.test", Password: "hash"}
	require.NoError(t, repo.Create(db, user))

	exists, err := repo.ExistsByEmail(db, "ann@clinic.test")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Lee", found.LastName)

	missing, err := repo.FindByEmail(db, "bob@clinic.test")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.Create(db, &entity.User{FirstName: "A", LastName: "B", Email: "ann@clinic.test", Password: "x"}))
}
