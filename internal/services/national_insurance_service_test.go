package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kerbside/kerbside-api/internal/services"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
)

func TestNationalInsuranceService_Calculate(t *testing.T) {
	service := services.NewNationalInsuranceService()

	tests := []struct {
		name             string
		salary           string
		isEmployeeLeg    bool
		expectedEmployee string
		expectedEmployer string
	}{
		{
			name:             "below every threshold",
			salary:           "8000",
			isEmployeeLeg:    true,
			expectedEmployee: "0.00",
			expectedEmployer: "0.00",
		},
		{
			// Employer liability starts at 9,100 even though the employee
			// pays nothing until 12,570.
			name:             "between secondary and primary thresholds",
			salary:           "10000",
			isEmployeeLeg:    true,
			expectedEmployee: "0.00",
			expectedEmployer: "124.20",
		},
		{
			// employee: (50000 - 12570) * 0.12 = 4491.60
			// employer: (50000 - 9100) * 0.138 = 5644.20
			name:             "main band salary",
			salary:           "50000",
			isEmployeeLeg:    true,
			expectedEmployee: "4491.60",
			expectedEmployer: "5644.20",
		},
		{
			// employee: (50270 - 12570) * 0.12 + (60000 - 50270) * 0.02
			//         = 4524.00 + 194.60 = 4718.60
			name:             "above the upper earnings limit",
			salary:           "60000",
			isEmployeeLeg:    true,
			expectedEmployee: "4718.60",
			expectedEmployer: "7024.20",
		},
		{
			name:             "employer leg is computed even when not requested",
			salary:           "50000",
			isEmployeeLeg:    false,
			expectedEmployee: "0.00",
			expectedEmployer: "5644.20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Calculate(params.NationalInsuranceParams{
				GrossAnnualSalary: decimal.RequireFromString(tt.salary),
				IsEmployeeLeg:     tt.isEmployeeLeg,
			})

			assert.Equal(t, tt.expectedEmployee, result.EmployeeContribution.StringFixed(2))
			assert.Equal(t, tt.expectedEmployer, result.EmployerContribution.StringFixed(2))

			expectedTotal := result.EmployeeContribution.Add(result.EmployerContribution)
			assert.True(t, result.Total.Equal(expectedTotal))

			assert.Equal(t, "0.12", result.EmployeeRate.String())
			assert.Equal(t, "0.138", result.EmployerRate.String())
		})
	}
}

func TestNationalInsuranceService_EmployerLegIndependence(t *testing.T) {
	service := services.NewNationalInsuranceService()
	salary := decimal.RequireFromString("50000")

	withEmployee := service.Calculate(params.NationalInsuranceParams{
		GrossAnnualSalary: salary,
		IsEmployeeLeg:     true,
	})
	withoutEmployee := service.Calculate(params.NationalInsuranceParams{
		GrossAnnualSalary: salary,
		IsEmployeeLeg:     false,
	})

	assert.True(t, withEmployee.EmployerContribution.Equal(withoutEmployee.EmployerContribution),
		"employer contribution must not depend on the employee-leg flag")
}
