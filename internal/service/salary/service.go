package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/salary"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
	"github.com/staffline/staffline-backend-go/internal/repository/postgresql"
)

type SalaryServiceImpl struct {
	db *database.DB
	salary.HistoryRepository
	employee.EmployeeRepository
}

func NewSalaryService(
	db *database.DB,
	historyRepo salary.HistoryRepository,
	employeeRepo employee.EmployeeRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:                 db,
		HistoryRepository:  historyRepo,
		EmployeeRepository: employeeRepo,
	}
}

// AddIncrement implements salary.SalaryService. The salary update and its
// history row land in the same transaction.
func (s *SalaryServiceImpl) AddIncrement(ctx context.Context, req salary.AddIncrementRequest) (salary.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.HistoryResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, actor.CompanyID)
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	inc, err := salary.ResolveIncrement(emp.Salary, req.NewSalary, req.IncrementAmount, req.IncrementPercentage)
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	effectiveDate := time.Now().UTC()
	if req.EffectiveDate != nil {
		effectiveDate, _ = time.Parse("2006-01-02", *req.EffectiveDate)
	}

	var history salary.History
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.EmployeeRepository.UpdateSalary(txCtx, emp.ID, actor.CompanyID, inc.NewSalary); err != nil {
			return err
		}

		history, err = s.HistoryRepository.Create(txCtx, salary.History{
			EmployeeID:          emp.ID,
			CompanyID:           actor.CompanyID,
			PreviousSalary:      emp.Salary,
			CurrentSalary:       inc.NewSalary,
			IncrementAmount:     inc.Amount,
			IncrementPercentage: inc.Percentage,
			IncrementDate:       effectiveDate,
			Reason:              req.Reason,
		})
		return err
	})
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	history.EmployeeName = &emp.Name

	return salary.ToHistoryResponse(history), nil
}

// BulkUpdate implements salary.SalaryService. The whole batch commits or
// rolls back together; unchanged salaries are skipped without a history row.
func (s *SalaryServiceImpl) BulkUpdate(ctx context.Context, req salary.BulkUpdateRequest) (salary.BulkUpdateResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.BulkUpdateResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return salary.BulkUpdateResponse{}, err
	}

	now := time.Now().UTC()

	var resp salary.BulkUpdateResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		for _, item := range req.Items {
			emp, err := s.EmployeeRepository.GetByID(txCtx, item.EmployeeID, actor.CompanyID)
			if err != nil {
				return fmt.Errorf("employee %s: %w", item.EmployeeID, err)
			}

			if emp.Salary.Equal(item.NewSalary) {
				resp.Skipped++
				continue
			}

			inc, err := salary.ResolveIncrement(emp.Salary, &item.NewSalary, nil, nil)
			if err != nil {
				return fmt.Errorf("employee %s: %w", item.EmployeeID, err)
			}

			if err := s.EmployeeRepository.UpdateSalary(txCtx, emp.ID, actor.CompanyID, inc.NewSalary); err != nil {
				return fmt.Errorf("employee %s: %w", item.EmployeeID, err)
			}

			if _, err := s.HistoryRepository.Create(txCtx, salary.History{
				EmployeeID:          emp.ID,
				CompanyID:           actor.CompanyID,
				PreviousSalary:      emp.Salary,
				CurrentSalary:       inc.NewSalary,
				IncrementAmount:     inc.Amount,
				IncrementPercentage: inc.Percentage,
				IncrementDate:       now,
				Reason:              req.Reason,
			}); err != nil {
				return fmt.Errorf("employee %s: %w", item.EmployeeID, err)
			}

			resp.Updated++
		}

		return nil
	})
	if err != nil {
		return salary.BulkUpdateResponse{}, err
	}

	return resp, nil
}

// GetEmployeeHistory implements salary.SalaryService.
func (s *SalaryServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) ([]salary.HistoryResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	histories, err := s.HistoryRepository.ListByEmployee(ctx, employeeID, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	return toHistoryResponses(histories), nil
}

// GetCompanyHistory implements salary.SalaryService.
func (s *SalaryServiceImpl) GetCompanyHistory(ctx context.Context) ([]salary.HistoryResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	histories, err := s.HistoryRepository.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	return toHistoryResponses(histories), nil
}

func toHistoryResponses(histories []salary.History) []salary.HistoryResponse {
	responses := make([]salary.HistoryResponse, 0, len(histories))
	for _, h := range histories {
		responses = append(responses, salary.ToHistoryResponse(h))
	}
	return responses
}

// GetStats implements salary.SalaryService.
func (s *SalaryServiceImpl) GetStats(ctx context.Context) (salary.CompanyStatsResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return salary.CompanyStatsResponse{}, err
	}

	stats, err := s.HistoryRepository.GetCompanyStats(ctx, actor.CompanyID)
	if err != nil {
		return salary.CompanyStatsResponse{}, err
	}

	return salary.CompanyStatsResponse{
		EmployeeCount:     stats.EmployeeCount,
		TotalSalary:       stats.TotalSalary,
		AverageSalary:     stats.AverageSalary,
		MinSalary:         stats.MinSalary,
		MaxSalary:         stats.MaxSalary,
		LatestPayoutMonth: stats.LatestPayoutMonth,
		LatestPayoutYear:  stats.LatestPayoutYear,
		LatestPayoutTotal: stats.LatestPayoutTotal,
	}, nil
}
