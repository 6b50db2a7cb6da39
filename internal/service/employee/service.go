package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func toEntity(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	req.Normalize()
	hireDate, err := time.Parse(clock.DateLayout, req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid hire_date: %w", err)
	}
	return employee.Employee{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Department:   req.Department,
		EmployeeCode: req.EmployeeCode,
		HireDate:     hireDate,
	}, nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	e, err := toEntity(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	e, err := toEntity(req.CreateEmployeeRequest)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	e.ID = req.ID
	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Search = validator.TrimToNil(filter.Search)
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		Pagination: pagination.NewPage(filter.Params, total, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.ToEmployeeResponse(e))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.Departments(ctx)
}
