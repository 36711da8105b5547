package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Agustín", "Lucía", "Mateo", "Sofía", "Santiago", "Valentina", "Joaquín", "Camila",
	"Facundo", "Martina", "Tomás", "Julieta", "Nicolás", "Micaela", "Franco", "Rocío",
	"Lautaro", "Florencia", "Gonzalo", "Abril",
}

var commonLastNames = []string{
	"González", "Rodríguez", "Gómez", "Fernández", "López", "Díaz", "Martínez", "Pérez",
	"García", "Sánchez", "Romero", "Sosa", "Torres", "Álvarez", "Ruiz", "Ramírez",
	"Flores", "Benítez", "Acosta", "Medina",
}

// StandardPositions son los puestos típicos de un local; se usan para
// sembrar datos de prueba y como calificaciones candidatas.
var StandardPositions = []string{"Caja", "Salón", "Cocina", "Mostrador", "Delivery"}

func GenerateRandomFullName() (firstName, lastName string) {
	return commonFirstNames[rand.Intn(len(commonFirstNames))],
		commonLastNames[rand.Intn(len(commonLastNames))]
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

var digits = "0123456789"

// GenerateUsernameFromName arma un nombre de usuario en minúsculas y sin
// acentos a partir del nombre real, con un sufijo numérico aleatorio.
func GenerateUsernameFromName(firstName, lastName string) string {
	username := accentReplacer.Replace(strings.ToLower(firstName)) + "." +
		accentReplacer.Replace(strings.ToLower(lastName))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	firstName, lastName := GenerateRandomFullName()
	username := GenerateUsernameFromName(firstName, lastName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleEncargado
	if rand.Intn(4) == 0 {
		role = domain.RoleGerente
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     firstName + " " + lastName,
		Email:        username + "@" + emailDomainName,
		Role:         role,
	}, nil
}

// GenerateRandomStudySchedule arma una disponibilidad semanal plausible:
// algún día completamente libre por cursada y algunos bloques de clase.
func GenerateRandomStudySchedule() domain.StudySchedule {
	schedule := make(domain.StudySchedule)

	for _, day := range domain.Weekdays {
		switch rand.Intn(5) {
		case 0:
			schedule[day] = domain.StudyDay{Free: true}
		case 1, 2:
			startHour := rand.Intn(12) + 8
			schedule[day] = domain.StudyDay{
				Blocks: []domain.TimeBlock{
					{
						Start: fmt.Sprintf("%02d:00", startHour),
						End:   fmt.Sprintf("%02d:00", startHour+rand.Intn(3)+1),
					},
				},
			}
		}
	}

	return schedule
}

// GenerateRandomEmployee arma un empleado de prueba con modalidad,
// calificaciones y horario de estudio aleatorios.
func GenerateRandomEmployee(storeID *int64) *domain.Employee {
	firstName, lastName := GenerateRandomFullName()

	modality := domain.ModalityFullTime
	if rand.Intn(2) == 0 {
		modality = domain.ModalityPartTime
	}

	skillCount := rand.Intn(len(StandardPositions)) + 1
	skills := make([]string, 0, skillCount)
	perm := rand.Perm(len(StandardPositions))
	for _, idx := range perm[:skillCount] {
		skills = append(skills, StandardPositions[idx])
	}

	return &domain.Employee{
		ID:            uuid.NewString(),
		Name:          firstName,
		LastName:      lastName,
		StoreID:       storeID,
		Modality:      modality,
		Skills:        skills,
		StudySchedule: GenerateRandomStudySchedule(),
	}
}
