package salaryslip

import (
	"context"
	"fmt"
	"time"

	salarysliperrors "go-salaryslip/internal/salaryslip/errors"
	"go-salaryslip/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateSalarySlipRequest) (SalarySlipResponse, error)
	GetAll(ctx context.Context) ([]SalarySlipResponse, error)
	GetByID(ctx context.Context, id string) (SalarySlipResponse, error)
	// Update returns nil, nil when no slip has the given id.
	Update(ctx context.Context, id string, req UpdateSalarySlipRequest) (*SalarySlipResponse, error)
	// Delete succeeds whether or not a slip had the given id.
	Delete(ctx context.Context, id string) error
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("salaryslip.service"),
		now:    time.Now,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalarySlipRequest,
) (SalarySlipResponse, error) {
	if req.EmployeeNumber == "" || req.DaysWorked == nil || req.BasicPay == nil ||
		req.GradePay == nil || req.DearnessAllowance == nil || req.DearnessPay == nil ||
		req.HRA == nil || req.SpecialPay == nil || req.OtherAllowance == nil {
		return SalarySlipResponse{}, salarysliperrors.ErrMissingRequiredFields
	}

	slip := &SalarySlip{
		ID:                uuid.New(),
		EmployeeNumber:    req.EmployeeNumber,
		DaysWorked:        *req.DaysWorked,
		BasicPay:          *req.BasicPay,
		GradePay:          *req.GradePay,
		DearnessAllowance: *req.DearnessAllowance,
		DearnessPay:       *req.DearnessPay,
		HRA:               *req.HRA,
		SpecialPay:        *req.SpecialPay,
		OtherAllowance:    *req.OtherAllowance,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.repo.Create(ctx, slip); err != nil {
		return SalarySlipResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary slip created",
		zap.String("salary_slip_id", slip.ID.String()),
		zap.String("employee_number", slip.EmployeeNumber),
	)

	return mapToResponse(*slip), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalarySlipResponse, error) {
	slips, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(slips), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalarySlipResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalarySlipResponse{}, salarysliperrors.ErrSalarySlipNotFound
	}

	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalarySlipResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*slip), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateSalarySlipRequest,
) (*SalarySlipResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarysliperrors.ErrInvalidSalarySlipID.WithCause(err)
	}

	slip, err := s.repo.Update(ctx, id, req.Columns())
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	log := contextutil.GetLogger(ctx, s.logger)
	if slip == nil {
		log.Info("salary slip update matched no record", zap.String("salary_slip_id", id))
		return nil, nil
	}

	log.Info("salary slip updated", zap.String("salary_slip_id", id))
	resp := mapToResponse(*slip)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("cast to uuid failed for value %q: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary slip deleted", zap.String("salary_slip_id", id))
	return nil
}

func (s *service) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarysliperrors.ErrSalarySlipNotFound
	}

	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return buildPayslipPDF(payslipLines(*slip))
}

func mapToResponse(slip SalarySlip) SalarySlipResponse {
	return SalarySlipResponse{
		ID:                slip.ID.String(),
		EmployeeNumber:    slip.EmployeeNumber,
		DaysWorked:        slip.DaysWorked.InexactFloat64(),
		BasicPay:          slip.BasicPay.InexactFloat64(),
		GradePay:          slip.GradePay.InexactFloat64(),
		DearnessAllowance: slip.DearnessAllowance.InexactFloat64(),
		DearnessPay:       slip.DearnessPay.InexactFloat64(),
		HRA:               slip.HRA.InexactFloat64(),
		SpecialPay:        slip.SpecialPay.InexactFloat64(),
		OtherAllowance:    slip.OtherAllowance.InexactFloat64(),
		CreatedAt:         slip.CreatedAt,
	}
}

func mapToListResponse(slips []SalarySlip) []SalarySlipResponse {
	res := make([]SalarySlipResponse, len(slips))
	for i, slip := range slips {
		res[i] = mapToResponse(slip)
	}
	return res
}
