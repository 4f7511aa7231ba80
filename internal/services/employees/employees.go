package employees

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/parser"
	"github.com/UnknownOlympus/athena/internal/repository"
)

const importTimeout = 30 * time.Second

var e164 = regexp.MustCompile(`^\+?[0-9]\d{1,14}$`)

// Staff loads employee rosters into the repository that backs the employee list API.
type Staff struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface) *Staff {
	return &Staff{log: log, repo: repo}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// ImportFrom parses a roster and imports it.
func (s *Staff) ImportFrom(pctx context.Context, employeeParser parser.EmployeeParserIface) (int, error) {
	ctx, cancel := context.WithTimeout(pctx, importTimeout)
	defer cancel()

	employees, err := employeeParser.ParseEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to parse employees from HTML: %w", err)
	}

	return s.Import(ctx, employees)
}

// Import saves every distinct department first, then upserts the employees by code.
// Missing or invalid emails are replaced with generated ones. It returns the number of saved employees.
func (s *Staff) Import(ctx context.Context, employees []models.Employee) (int, error) {
	const opn = "Employee.Import"
	log := s.initLogger(opn)

	fixedEmployees := fixInvalidEmail(ctx, log, employees)

	seen := make(map[string]struct{})
	for _, employee := range fixedEmployees {
		if employee.Department == nil {
			continue
		}
		if _, ok := seen[employee.Department.Code]; ok {
			continue
		}
		seen[employee.Department.Code] = struct{}{}

		if err := s.repo.SaveDepartment(ctx, *employee.Department); err != nil {
			return 0, fmt.Errorf("failed to save department %s: %w", employee.Department.Code, err)
		}
	}
	log.DebugContext(ctx, "Departments saved", "value", len(seen))

	saved := 0
	for _, employee := range fixedEmployees {
		if _, isPhone := ValidateEmployee(employee.Email, employee.Phone); !isPhone && employee.Phone != "" {
			log.DebugContext(ctx, "Employee has a non E.164 phone number", "code", employee.Code, "phone", employee.Phone)
		}

		id, err := s.repo.SaveEmployee(ctx, employee)
		if err != nil {
			return saved, fmt.Errorf("failed to save employee %s: %w", employee.Code, err)
		}
		saved++
		log.DebugContext(ctx, "Employee saved", "code", employee.Code, "id", id)
	}

	log.InfoContext(ctx, "Roster imported", "employees", saved, "departments", len(seen))

	return saved, nil
}

func fixInvalidEmail(ctx context.Context, log *slog.Logger, employees []models.Employee) []models.Employee {
	var invalidCounter int
	fixedEmployees := make([]models.Employee, 0, len(employees))

	for _, employee := range employees {
		if employee.Email == "" {
			log.DebugContext(ctx, "Email was not specified, generate random email", "code", employee.Code)
			employee.Email = randomail.GenerateRandomEmail()
			invalidCounter++
		}

		isEmail, _ := ValidateEmployee(employee.Email, employee.Phone)
		if !isEmail {
			log.InfoContext(ctx, "Employee has invalid email, it will be replaced with temporary random email.",
				"code", employee.Code, "email", employee.Email,
			)
			employee.Email = randomail.GenerateRandomEmail()
			invalidCounter++
		}

		fixedEmployees = append(fixedEmployees, employee)
	}

	if invalidCounter != 0 {
		log.WarnContext(
			ctx, "Number of employees with no or invalid email addressess. For mode information, enable debug mode",
			"value", invalidCounter)
	}

	return fixedEmployees
}

// ValidateEmployee validates the email and phone number of an employee.
func ValidateEmployee(email, phone string) (bool, bool) {
	return isValidEmail(email), isValidPhoneNumber(phone)
}

// isValidEmail checks if the given email address is valid.
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// isValidPhoneNumber checks if a phone number is valid according to the E.164 format.
func isValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	return e164.MatchString(phone)
}

