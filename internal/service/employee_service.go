package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/contract"
)

type IEmployeeService interface {
	Get(ctx context.Context) (*dto.EmployeeResponse, error)
	Seed(ctx context.Context) (*dto.SeedEmployeeResponse, error)
}

// Demo data pools for the randomized employee record.
var (
	seedNames = []string{
		"Nguyễn Văn An",
		"Trần Thị Bích",
		"Lê Minh Tuấn",
		"Phạm Thùy Dương",
		"Hoàng Văn Nam",
		"Vũ Thị Hạnh",
		"Đặng Quốc Toàn",
		"Bùi Thị Lan",
		"Phan Văn Hùng",
		"Đỗ Thị Mai",
	}
	seedPositions = []string{
		"Kỹ sư phần mềm",
		"Quản lý sản phẩm",
		"Nhà thiết kế",
		"Chuyên viên marketing",
		"Nhân viên kinh doanh",
		"Điều phối nhân sự",
		"Chuyên viên tài chính",
		"Quản lý vận hành",
	}
	seedDepartments = []string{
		"Kỹ thuật",
		"Sản phẩm",
		"Thiết kế",
		"Marketing",
		"Kinh doanh",
		"Nhân sự",
		"Tài chính",
		"Vận hành",
	}
)

type employeeService struct {
	employeeRepo contract.EmployeeRepository
}

func NewEmployeeService(employeeRepo contract.EmployeeRepository) IEmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (es *employeeService) Get(ctx context.Context) (*dto.EmployeeResponse, error) {
	employee, err := es.employeeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeResponse{Employee: *employee}, nil
}

// Seed overwrites the employee record with randomized demo data.
func (es *employeeService) Seed(ctx context.Context) (*dto.SeedEmployeeResponse, error) {
	hireDate := time.Date(
		2020+rand.IntN(4),
		time.Month(1+rand.IntN(12)),
		1+rand.IntN(28),
		0, 0, 0, 0, time.UTC,
	)

	employee := entity.Employee{
		Name:               seedNames[rand.IntN(len(seedNames))],
		Position:           seedPositions[rand.IntN(len(seedPositions))],
		Department:         seedDepartments[rand.IntN(len(seedDepartments))],
		RemainingLeaveDays: 5 + rand.IntN(20),
		TotalLeaveDays:     20,
		HireDate:           hireDate.Format("2006-01-02"),
		EmployeeId:         fmt.Sprintf("EMP%03d", rand.IntN(1000)),
	}

	if err := es.employeeRepo.Replace(ctx, &employee); err != nil {
		return nil, err
	}

	return &dto.SeedEmployeeResponse{
		Message:  "Employee data randomized successfully",
		Employee: employee,
	}, nil
}
