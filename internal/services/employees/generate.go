package employees

import (
	"fmt"
	"math/rand/v2"

	"github.com/UnknownOlympus/athena/internal/models"
)

var (
	firstNames = []string{
		"Ann", "Bob", "Carla", "Dmytro", "Elena", "Farid", "Grace", "Hiro", "Ines", "Jonas",
		"Katya", "Liam", "Mia", "Nikolai", "Olga", "Pavel", "Quinn", "Rosa", "Sven", "Tara",
	}
	lastNames = []string{
		"Lee", "Stone", "O'Brien", "Kovalenko", "Garcia", "Nakamura", "Smith", "Dubois", "Novak", "Rossi",
		"Schmidt", "Petrenko", "Silva", "Johnson", "Moreau", "Jensen",
	}
	streets = []string{"Main St", "Oak Ave", "Market St", "River Rd", "Hill Ln", "Station Sq"}

	demoDepartments = []models.Department{
		{Code: "ENG", Description: "Engineering"},
		{Code: "FIN", Description: "Finance"},
		{Code: "HR", Description: "Human Resources"},
		{Code: "OPS", Description: "Operations"},
		{Code: "R&D", Description: "Research & Development"},
	}
)

// GenerateEmployees builds n demo employees with codes E-0001..E-n. Roughly one in six has no department,
// and emails are left empty for Import to fill in.
func GenerateEmployees(n int, rnd *rand.Rand) []models.Employee {
	employees := make([]models.Employee, 0, n)

	for i := 1; i <= n; i++ {
		employee := models.Employee{
			Code:      fmt.Sprintf("E-%04d", i),
			FirstName: firstNames[rnd.IntN(len(firstNames))],
			LastName:  lastNames[rnd.IntN(len(lastNames))],
			Phone:     fmt.Sprintf("+380%09d", rnd.IntN(1_000_000_000)),
			Address:   fmt.Sprintf("%d %s", 1+rnd.IntN(200), streets[rnd.IntN(len(streets))]),
		}

		const noDepartmentOdds = 6
		if rnd.IntN(noDepartmentOdds) != 0 {
			department := demoDepartments[rnd.IntN(len(demoDepartments))]
			employee.Department = &department
		}

		employees = append(employees, employee)
	}

	return employees
}
