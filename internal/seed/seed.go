package seed

import (
	"errors"
	"time"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	vaccinedomain "github.com/petcareops/vetclinic/internal/vaccine/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/petcareops/vetclinic/pkg/db"
	"gorm.io/gorm"
)

// Get-or-create helpers keyed on the natural identifiers, so the seed can
// run against a live database any number of times. A duplicate-key error
// from a concurrent insert resolves to a re-fetch.

func GetOrCreateVeterinarian(conn *gorm.DB, vet vetdomain.Veterinarian) (vetdomain.Veterinarian, error) {
	var existing vetdomain.Veterinarian
	err := conn.Where("license_number = ?", vet.LicenseNumber).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return vetdomain.Veterinarian{}, err
	}

	err = conn.Where("email = ?", vet.Email).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return vetdomain.Veterinarian{}, err
	}

	if err := conn.Create(&vet).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			refetchErr := conn.Where("license_number = ?", vet.LicenseNumber).First(&existing).Error
			if refetchErr == nil {
				return existing, nil
			}
		}
		return vetdomain.Veterinarian{}, err
	}
	return vet, nil
}

func GetOrCreateOwner(conn *gorm.DB, owner ownerdomain.Owner) (ownerdomain.Owner, error) {
	var existing ownerdomain.Owner
	err := conn.Where("email = ?", owner.Email).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ownerdomain.Owner{}, err
	}

	if err := conn.Create(&owner).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			refetchErr := conn.Where("email = ?", owner.Email).First(&existing).Error
			if refetchErr == nil {
				return existing, nil
			}
		}
		return ownerdomain.Owner{}, err
	}
	return owner, nil
}

func GetOrCreatePet(conn *gorm.DB, pet petdomain.Pet) (petdomain.Pet, error) {
	query := conn.Where("owner_id = ? AND name = ?", pet.OwnerID, pet.Name)
	if pet.BirthDate != nil {
		query = query.Where("birth_date = ?", *pet.BirthDate)
	}

	var existing petdomain.Pet
	err := query.First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return petdomain.Pet{}, err
	}

	if err := conn.Create(&pet).Error; err != nil {
		return petdomain.Pet{}, err
	}
	return pet, nil
}

func GetOrCreateAppointment(conn *gorm.DB, appt apptdomain.Appointment) (apptdomain.Appointment, error) {
	var existing apptdomain.Appointment
	err := conn.Where("pet_id = ? AND veterinarian_id = ? AND appointment_date = ?",
		appt.PetID, appt.VeterinarianID, appt.AppointmentDate).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apptdomain.Appointment{}, err
	}

	if appt.Status == "" {
		appt.Status = apptdomain.StatusScheduled
	}
	if err := conn.Create(&appt).Error; err != nil {
		return apptdomain.Appointment{}, err
	}
	return appt, nil
}

func GetOrCreateVaccine(conn *gorm.DB, vaccine vaccinedomain.Vaccine) (vaccinedomain.Vaccine, error) {
	var existing vaccinedomain.Vaccine
	err := conn.Where("name = ?", vaccine.Name).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return vaccinedomain.Vaccine{}, err
	}

	if err := conn.Create(&vaccine).Error; err != nil {
		return vaccinedomain.Vaccine{}, err
	}
	return vaccine, nil
}

// Run loads a small deterministic sample set.
func Run(conn *gorm.DB, now time.Time) error {
	phone := "555-0101"
	specialization := "general practice"
	vet, err := GetOrCreateVeterinarian(conn, vetdomain.Veterinarian{
		LicenseNumber:   "VET-1001",
		FirstName:       "Maria",
		LastName:        "Santos",
		Email:           "maria.santos@clinic.example",
		Phone:           &phone,
		Specialization:  &specialization,
		IsActive:        true,
		ConsultationFee: 75,
	})
	if err != nil {
		return err
	}

	owner, err := GetOrCreateOwner(conn, ownerdomain.Owner{
		FirstName: "James",
		LastName:  "Brennan",
		Email:     "james.brennan@example.com",
	})
	if err != nil {
		return err
	}

	birth := time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC)
	breed := "beagle"
	pet, err := GetOrCreatePet(conn, petdomain.Pet{
		Name:      "Rufus",
		Species:   petdomain.SpeciesDog,
		Breed:     &breed,
		BirthDate: &birth,
		Weight:    12.4,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return err
	}

	if _, err := GetOrCreateAppointment(conn, apptdomain.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		AppointmentDate: now.Add(48 * time.Hour).Truncate(time.Hour),
		Reason:          "annual checkup",
		Status:          apptdomain.StatusScheduled,
	}); err != nil {
		return err
	}

	manufacturer := "Zoetis"
	species := "dog"
	if _, err := GetOrCreateVaccine(conn, vaccinedomain.Vaccine{
		Name:              "Rabies",
		Manufacturer:      &manufacturer,
		SpeciesApplicable: &species,
	}); err != nil {
		return err
	}

	return nil
}
