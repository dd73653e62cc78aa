package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/ai/leave"
)

type ILeaveService interface {
	Parse(ctx context.Context, request *dto.ParseLeaveRequest) (*dto.ParsedLeaveResponse, error)
	Create(ctx context.Context, request *dto.CreateLeaveRequest) (*dto.CreateLeaveResponse, error)
	Cases(ctx context.Context) (*dto.LeaveCasesResponse, error)

	// FileFromMessage runs parse + create for a detected time-off request
	// and reports whether a case was filed. Failures are logged and
	// swallowed so the parent chat turn is never blocked.
	FileFromMessage(ctx context.Context, message, model string) bool
}

type leaveService struct {
	extractor    *leave.Extractor
	employeeRepo contract.EmployeeRepository
	leaveRepo    contract.LeaveCaseRepository
	log          logger.ILogger
}

func NewLeaveService(
	extractor *leave.Extractor,
	employeeRepo contract.EmployeeRepository,
	leaveRepo contract.LeaveCaseRepository,
	log logger.ILogger,
) ILeaveService {
	return &leaveService{
		extractor:    extractor,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		log:          log,
	}
}

func (ls *leaveService) Parse(ctx context.Context, request *dto.ParseLeaveRequest) (*dto.ParsedLeaveResponse, error) {
	parsed, err := ls.extractor.Extract(ctx, request.Message, request.Model)
	if err != nil {
		return nil, err
	}
	return &dto.ParsedLeaveResponse{
		StartDate: parsed.StartDate,
		EndDate:   parsed.EndDate,
		Days:      parsed.Days,
		Type:      parsed.Type,
		Note:      parsed.Note,
	}, nil
}

func (ls *leaveService) Create(ctx context.Context, request *dto.CreateLeaveRequest) (*dto.CreateLeaveResponse, error) {
	employee, err := ls.employeeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	leaveCase := entity.LeaveCase{
		Id:         uuid.NewString(),
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Days:       request.Days,
		Type:       request.Type,
		Note:       request.Note,
		Status:     entity.LeaveStatusCreated,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		EmployeeId: employee.EmployeeId,
	}

	if err := ls.leaveRepo.Append(ctx, &leaveCase); err != nil {
		return nil, err
	}

	return &dto.CreateLeaveResponse{
		Id:      leaveCase.Id,
		Message: "Leave case created successfully",
	}, nil
}

func (ls *leaveService) Cases(ctx context.Context) (*dto.LeaveCasesResponse, error) {
	cases, err := ls.leaveRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LeaveCasesResponse{Cases: cases}, nil
}

func (ls *leaveService) FileFromMessage(ctx context.Context, message, model string) bool {
	parsed, err := ls.extractor.Extract(ctx, message, model)
	if err != nil {
		ls.log.Warn("leave", "leave extraction failed, no case created", map[string]interface{}{"error": err.Error()})
		return false
	}

	createReq := &dto.CreateLeaveRequest{
		StartDate: parsed.StartDate,
		EndDate:   parsed.EndDate,
		Days:      parsed.Days,
		Type:      parsed.Type,
		Note:      parsed.Note,
	}
	if err := serverutils.ValidateRequest(createReq); err != nil {
		ls.log.Warn("leave", "extracted leave fields invalid", map[string]interface{}{"error": err.Error()})
		return false
	}

	created, err := ls.Create(ctx, createReq)
	if err != nil {
		ls.log.Warn("leave", "leave case creation failed", map[string]interface{}{"error": err.Error()})
		return false
	}

	ls.log.Info("leave", "leave case filed from chat", map[string]interface{}{"id": created.Id})
	return true
}
