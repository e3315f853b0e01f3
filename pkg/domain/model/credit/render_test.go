package credit_test

import (
	"errors"
	"testing"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/credit"
	"github.com/m-mizutani/gt"
)

func testDetail() *credit.Detail {
	return &credit.Detail{
		RequestID: "US-123456-7890",
		Borrower: credit.Borrower{
			Name:              "John Smith",
			CreditScore:       750,
			AnnualIncome:      85000,
			DebtToIncomeRatio: 0.28,
			EmploymentHistory: "Software Engineer at TechCorp for 5 years",
			Assets:            150000,
			Liabilities:       45000,
		},
		Collateral: credit.Collateral{
			PropertyType:  "Single Family Residence",
			PropertyValue: 297500,
			LTVRatio:      0.75,
			AppraisalDate: "2024-01-15",
			Address:       "123 Main St, Denver, CO 80202",
		},
		Pricing: credit.Pricing{
			InterestRate:   6.5,
			LoanTermMonths: 360,
			MonthlyPayment: 1339,
			OriginationFee: 2231.25,
			ProcessingFee:  1500,
			TotalFees:      3731.25,
		},
		LoanAmount:      223125,
		LoanPurpose:     "Home Purchase",
		Status:          "pending",
		RiskRating:      "Medium",
		Conditions:      []string{"Property appraisal completion", "Clear title search"},
		Covenants:       []string{"Maintain property insurance"},
		Guarantors:      []string{},
		RegulatoryNotes: "Complies with TRID and QM requirements",
		CreatedDate:     "2024-01-10",
		UpdatedDate:     "2024-01-15",
	}
}

func TestRender(t *testing.T) {
	text := testDetail().Render()

	gt.S(t, text).
		Contains("CREDIT REQUEST DETAILS FOR US-123456-7890:").
		Contains("BORROWER INFORMATION:").
		Contains("- Annual Income: $85,000.00").
		Contains("- Debt-to-Income Ratio: 28.0%").
		Contains("COLLATERAL INFORMATION:").
		Contains("- LTV Ratio: 75.0%").
		Contains("PRICING & FEES:").
		Contains("- Interest Rate: 6.50%").
		Contains("- Loan Term: 360 months").
		Contains("LOAN DETAILS:").
		Contains("- Loan Amount: $223,125.00").
		Contains("CONDITIONS:").
		Contains("- Clear title search").
		Contains("COVENANTS:").
		Contains("REGULATORY NOTES:").
		Contains("DATES:")
}

func TestRenderError(t *testing.T) {
	text := credit.RenderError("US-123456-7890", errors.New("status 503"))
	gt.S(t, text).
		Contains("US-123456-7890").
		Contains("status 503")
}
