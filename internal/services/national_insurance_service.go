package services

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/constants"
	"github.com/kerbside/kerbside-api/internal/helpers"
	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/api/responses"
)

// NationalInsuranceService computes class 1 National Insurance
// contributions. Stateless; safe for concurrent use.
type NationalInsuranceService struct {
	logger *zap.Logger
}

// NewNationalInsuranceService creates a new National Insurance service
func NewNationalInsuranceService() *NationalInsuranceService {
	return &NationalInsuranceService{
		logger: logger.Log,
	}
}

// Calculate computes the employee and employer contribution legs for an
// annual gross salary. The employee leg is only populated when requested;
// the employer leg is always computed regardless, because the employer
// liability exists whether or not the caller asked about the employee
// side. Callers depend on that asymmetry.
func (s *NationalInsuranceService) Calculate(p params.NationalInsuranceParams) *responses.NationalInsuranceResult {
	salary := p.GrossAnnualSalary

	employee := decimal.Zero
	if p.IsEmployeeLeg {
		if salary.GreaterThan(constants.NiPrimaryThreshold) {
			banded := decimal.Min(salary, constants.NiUpperEarningsLimit).
				Sub(constants.NiPrimaryThreshold)
			employee = banded.Mul(constants.NiEmployeeMainRate)
		}
		if salary.GreaterThan(constants.NiUpperEarningsLimit) {
			excess := salary.Sub(constants.NiUpperEarningsLimit)
			employee = employee.Add(excess.Mul(constants.NiEmployeeUpperRate))
		}
		employee = helpers.RoundMoney(employee)
	}

	employer := decimal.Zero
	if salary.GreaterThan(constants.NiSecondaryThreshold) {
		employer = helpers.RoundMoney(
			salary.Sub(constants.NiSecondaryThreshold).Mul(constants.NiEmployerRate))
	}

	result := &responses.NationalInsuranceResult{
		EmployeeContribution: employee,
		EmployerContribution: employer,
		Total:                employee.Add(employer),
		EmployeeRate:         constants.NiEmployeeMainRate,
		EmployerRate:         constants.NiEmployerRate,
	}

	s.logger.Debug("calculated national insurance",
		zap.String("salary", salary.String()),
		zap.Bool("employee_leg", p.IsEmployeeLeg),
		zap.String("employee", employee.String()),
		zap.String("employer", employer.String()))

	return result
}
