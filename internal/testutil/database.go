// Package testutil provides fixtures shared by repository, usecase and
// handler tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"clinic-admin/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// NewTestDB opens a private in-memory SQLite database with the clinic schema
// migrated and foreign keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&entity.User{}, &entity.Doctor{}, &entity.Appointment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SeedDoctor inserts a doctor row directly, bypassing name canonicalization.
func SeedDoctor(t *testing.T, db *gorm.DB, name string, role entity.Specialty) *entity.Doctor {
	t.Helper()

	doctor := &entity.Doctor{Name: name, Role: role}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}

// SeedAppointment inserts an appointment row directly, bypassing the slot check.
func SeedAppointment(t *testing.T, db *gorm.DB, patient string, doctorID int64, date, time string) *entity.Appointment {
	t.Helper()

	appointment := &entity.Appointment{PatientName: patient, DoctorID: doctorID, Date: date, Time: time}
	if err := db.Omit("Doctor").Create(appointment).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return appointment
}
