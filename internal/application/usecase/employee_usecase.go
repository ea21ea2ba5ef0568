package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

const resourceEmployee = "zaměstnanec"

// EmployeeUseCase employee operations: CRUD, hierarchy, registration and salary tools.
type EmployeeUseCase struct {
	repo   repository.EmployeeRepository
	report SalaryReportGenerator
	now    func() time.Time
}

// NewEmployeeUseCase builds the use case. report may be nil when PDF export is not needed.
func NewEmployeeUseCase(repo repository.EmployeeRepository, report SalaryReportGenerator) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, report: report, now: time.Now}
}

// List returns employees matching the query; zero ids and blank names are ignored.
func (uc *EmployeeUseCase) List(ctx context.Context, q dto.EmployeeFilterQuery) ([]dto.EmployeeResponse, error) {
	filter := entity.EmployeeFilter{
		ID:            q.ID,
		FirstName:     q.Jmeno,
		LastName:      q.Prijmeni,
		SupermarketID: q.SupermarketID,
		WarehouseID:   q.SkladID,
		PositionID:    q.PoziceID,
		Limit:         q.Limit,
	}
	filter.Normalize()
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, toEmployeeResponse), nil
}

// GetByID returns a *domain.NotFoundError when the employee does not exist.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID zaměstnance: %d", id)
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NewNotFound(resourceEmployee, "id", id)
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Hierarchy returns the employee and everyone below them, root first.
func (uc *EmployeeUseCase) Hierarchy(ctx context.Context, id int64) ([]dto.EmployeeNodeResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID zaměstnance: %d", id)
	}
	nodes, err := uc.repo.Hierarchy(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, domain.NewNotFound(resourceEmployee, "id", id)
	}
	return mapSlice(nodes, func(n *entity.EmployeeNode) dto.EmployeeNodeResponse {
		return dto.EmployeeNodeResponse{EmployeeResponse: toEmployeeResponse(&n.Employee), Level: n.Level}
	}), nil
}

// Create validates and stores a new employee.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.repo.Create(ctx, employeeFromRequest(0, in))
}

// Update overwrites the employee identified by id.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID zaměstnance: %d", id)
	}
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, employeeFromRequest(id, in))
}

// Delete removes the employee.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID zaměstnance: %d", id)
	}
	return uc.repo.Delete(ctx, id)
}

// LinkUser attaches an existing user account to an employee.
func (uc *EmployeeUseCase) LinkUser(ctx context.Context, in dto.LinkUserRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.repo.LinkUser(ctx, in.IdZamestnance, in.IdUser)
}

// Register creates the user account, the employee and their link atomically.
// The password is stored as a bcrypt hash.
func (uc *EmployeeUseCase) Register(ctx context.Context, in dto.RegisterEmployeeRequest) (*dto.RegisterEmployeeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	roleID := in.RoleID
	if roleID <= 0 {
		roleID = entity.RoleIDEmployee
	}
	reg := &entity.EmployeeRegistration{
		FirstName:     in.Jmeno,
		LastName:      in.Prijmeni,
		Email:         in.Email,
		PasswordHash:  string(hash),
		RoleID:        roleID,
		HireDate:      in.DatumZamestnani.TimePtr(),
		WorkHours:     entity.PositiveInt32(in.Pracovnidoba),
		SupermarketID: entity.PositiveID(in.SupermarketIdSupermarketu),
		WarehouseID:   entity.PositiveID(in.SkladIdSkladu),
		AddressID:     entity.PositiveID(in.AdresaIdAdresy),
		Salary:        entity.PositiveDecimal(in.Mzda),
		PositionID:    entity.PositiveID(in.PoziceIdPozice),
	}
	userID, employeeID, err := uc.repo.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterEmployeeResponse{IdUser: userID, IdZamestnance: employeeID}, nil
}

// AverageSubordinateSalary computes the mean salary of everyone below the employee
// (hierarchy levels > 1) in process, rounded to two decimals. Subordinates without
// a salary are skipped. No subordinate salaries yields a NotFoundError.
func (uc *EmployeeUseCase) AverageSubordinateSalary(ctx context.Context, id int64) (*dto.AverageSalaryResponse, error) {
	nodes, err := uc.Hierarchy(ctx, id)
	if err != nil {
		return nil, err
	}
	sum := decimal.Zero
	count := 0
	for _, n := range nodes {
		if n.Level <= 1 || n.Mzda == nil {
			continue
		}
		sum = sum.Add(*n.Mzda)
		count++
	}
	if count == 0 {
		return nil, domain.NewNotFound("průměrná mzda podřízených", "idZamestnance", id)
	}
	avg := sum.Div(decimal.NewFromInt(int64(count))).Round(2)
	return &dto.AverageSalaryResponse{IdZamestnance: id, AverageSalary: avg}, nil
}

// AverageSubordinateSalaryProcedure lets the database compute the same average.
func (uc *EmployeeUseCase) AverageSubordinateSalaryProcedure(ctx context.Context, id int64) (*dto.AverageSalaryResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID zaměstnance: %d", id)
	}
	avg, err := uc.repo.AverageSubordinateSalary(ctx, id)
	if err != nil {
		return nil, err
	}
	if avg == nil {
		return nil, domain.NewNotFound("průměrná mzda podřízených", "idZamestnance", id)
	}
	return &dto.AverageSalaryResponse{IdZamestnance: id, AverageSalary: avg.Round(2)}, nil
}

// ApplySalaryIndexation raises salaries by a percentage within [min, max].
func (uc *EmployeeUseCase) ApplySalaryIndexation(ctx context.Context, in dto.SalaryIndexationRequest) (*dto.SalaryIndexationResponse, error) {
	if in.MinPercentage == nil || in.MaxPercentage == nil {
		return nil, domain.NewValidation("chybí minPercentage nebo maxPercentage")
	}
	if in.MinPercentage.GreaterThan(*in.MaxPercentage) {
		return nil, domain.NewValidation("minPercentage (%s) nesmí být větší než maxPercentage (%s)",
			in.MinPercentage.String(), in.MaxPercentage.String())
	}
	result, err := uc.repo.ApplySalaryIndexation(ctx, *in.MinPercentage, *in.MaxPercentage)
	if err != nil {
		return nil, err
	}
	return &dto.SalaryIndexationResponse{Result: result}, nil
}

// SalaryOverview lists every employee's salary with position name.
func (uc *EmployeeUseCase) SalaryOverview(ctx context.Context) ([]dto.EmployeeSalaryResponse, error) {
	rows, err := uc.repo.SalaryOverview(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, func(r *entity.EmployeeSalary) dto.EmployeeSalaryResponse {
		return dto.EmployeeSalaryResponse{
			IdZamestnance: r.EmployeeID,
			Jmeno:         r.FirstName,
			Prijmeni:      r.LastName,
			Mzda:          r.Salary,
			NazevPozice:   r.PositionName,
		}
	}), nil
}

// SalaryReportPDF renders the salary overview and returns the PDF and a file name.
func (uc *EmployeeUseCase) SalaryReportPDF(ctx context.Context) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("salary report generator not configured")
	}
	rows, err := uc.repo.SalaryOverview(ctx)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdf, err := uc.report.GenerateSalaryReport(ctx, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("salary report: %w", err)
	}
	return pdf, fmt.Sprintf("mzdy-%s.pdf", now.Format("2006-01-02")), nil
}
