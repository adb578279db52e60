package entity

import "time"

// Specialty is the medical role a doctor practices
type Specialty string

const (
	SpecialtyGeneral       Specialty = "General"
	SpecialtyDentist       Specialty = "Dentist"
	SpecialtyCardiologist  Specialty = "Cardiologist"
	SpecialtyPediatrician  Specialty = "Pediatrician"
	SpecialtyDermatologist Specialty = "Dermatologist"
	SpecialtyNeurologist   Specialty = "Neurologist"
	SpecialtyOrthopedic    Specialty = "Orthopedic"
)

var specialties = []Specialty{
	SpecialtyGeneral,
	SpecialtyDentist,
	SpecialtyCardiologist,
	SpecialtyPediatrician,
	SpecialtyDermatologist,
	SpecialtyNeurologist,
	SpecialtyOrthopedic,
}

// Specialties returns every supported specialty in display order
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// IsValid checks if the specialty is one of the supported values
func (s Specialty) IsValid() bool {
	for _, known := range specialties {
		if s == known {
			return true
		}
	}
	return false
}

// Doctor represents a practitioner appointments can be booked with.
// Name always carries the "Dr." honorific.
type Doctor struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      Specialty `gorm:"type:varchar(50);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
