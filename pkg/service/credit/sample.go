package credit

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/credit"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// SampleSource serves built-in sample credit requests for development and
// demos. Borrower selection keys off first names embedded in the request
// identifier; that convenience lives entirely inside this source and is not
// part of the identifier contract.
type SampleSource struct{}

var _ interfaces.CreditSource = &SampleSource{}

func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

func (s *SampleSource) ListRequests(ctx context.Context) ([]credit.Request, error) {
	rows := []struct {
		name   string
		amount float64
		status string
	}{
		{"John Smith", 250000, "pending"},
		{"Sarah Johnson", 450000, "under_review"},
		{"Michael Brown", 180000, "pending"},
		{"Emily Davis", 320000, "approved"},
		{"Robert Wilson", 275000, "pending"},
	}

	requests := make([]credit.Request, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, credit.Request{
			RequestID:    randomRequestID(),
			BorrowerName: row.name,
			LoanAmount:   row.amount,
			Status:       row.status,
		})
	}
	return requests, nil
}

func randomRequestID() types.RequestID {
	return types.RequestID(fmt.Sprintf("US-%06d-%04d", rand.Intn(900000)+100000, rand.Intn(9000)+1000))
}

func (s *SampleSource) GetDetail(ctx context.Context, id types.RequestID) (*credit.Detail, error) {
	key := borrowerKey(id)
	borrower := sampleBorrowers()[key]
	collateral := sampleCollateral(key, borrower)

	loanAmount := 250000.0
	if collateral.PropertyValue > 0 {
		loanAmount = collateral.PropertyValue * collateral.LTVRatio
	}

	detail := &credit.Detail{
		RequestID:       id,
		Borrower:        borrower,
		Collateral:      collateral,
		Pricing:         samplePricing(key, borrower, loanAmount),
		LoanAmount:      loanAmount,
		LoanPurpose:     "Home Purchase",
		Status:          "pending",
		RiskRating:      riskRating(key, borrower),
		Conditions:      conditionsFor(key),
		Covenants:       covenantsFor(key),
		Guarantors:      guarantorsFor(key),
		RegulatoryNotes: regulatoryNotesFor(key),
		CreatedDate:     "2024-01-10",
		UpdatedDate:     "2024-01-15",
	}
	if key == "robert" {
		detail.LoanPurpose = "Purpose Not Specified"
	}
	return detail, nil
}

// borrowerKey maps an identifier to a sample borrower. Unknown identifiers
// fall back to the complete profile.
func borrowerKey(id types.RequestID) string {
	lower := strings.ToLower(id.String())
	for _, key := range []string{"sarah", "michael", "emily", "robert"} {
		if strings.Contains(lower, key) {
			return key
		}
	}
	return "john"
}

func sampleBorrowers() map[string]credit.Borrower {
	return map[string]credit.Borrower{
		"john": {
			Name:              "John Smith",
			CreditScore:       750,
			AnnualIncome:      85000,
			DebtToIncomeRatio: 0.28,
			EmploymentHistory: "Software Engineer at TechCorp for 5 years",
			Assets:            150000,
			Liabilities:       45000,
		},
		"sarah": {
			Name:              "Sarah Johnson",
			AnnualIncome:      95000,
			EmploymentHistory: "Marketing Director at AdCorp for 3 years",
			Liabilities:       60000,
		},
		"michael": {
			Name:              "Michael Brown",
			CreditScore:       680,
			DebtToIncomeRatio: 0.35,
			Assets:            80000,
			Liabilities:       35000,
		},
		"emily": {
			Name:              "Emily Davis",
			CreditScore:       720,
			AnnualIncome:      78000,
			DebtToIncomeRatio: 0.30,
			EmploymentHistory: "Nurse at City Hospital for 4 years",
			Assets:            120000,
		},
		"robert": {
			Name: "Robert Wilson",
			// Very incomplete file: everything else still pending.
		},
	}
}

func sampleCollateral(key string, borrower credit.Borrower) credit.Collateral {
	cities := []string{"Denver", "Austin", "Seattle"}
	city := cities[rand.Intn(len(cities))]

	switch key {
	case "robert":
		return credit.Collateral{
			PropertyType: "Property Type Not Provided",
			Address:      "Address Not Provided",
		}
	case "sarah":
		return credit.Collateral{
			PropertyType:  "Single Family Residence",
			PropertyValue: max(borrower.AnnualIncome*3.5, 200000),
			LTVRatio:      0.75,
			AppraisalDate: "Pending Appraisal",
			Address:       "Property Address Pending, " + city,
		}
	default:
		value := 300000.0
		if borrower.AnnualIncome > 0 {
			value = max(borrower.AnnualIncome*3.5, 250000)
		}
		return credit.Collateral{
			PropertyType:  "Single Family Residence",
			PropertyValue: value,
			LTVRatio:      0.75,
			AppraisalDate: "2024-01-15",
			Address:       fmt.Sprintf("123 Main St, %s, CO 80202", city),
		}
	}
}

func samplePricing(key string, borrower credit.Borrower, loanAmount float64) credit.Pricing {
	switch key {
	case "robert":
		// Rate, term and fees all pending on the incomplete file.
		return credit.Pricing{}
	case "sarah", "michael":
		var rate float64
		if borrower.CreditScore > 0 {
			rate = 6.5 + float64(750-borrower.CreditScore)*0.01
		}
		var origination float64
		if loanAmount > 0 {
			origination = loanAmount * 0.01
		}
		return credit.Pricing{
			InterestRate:   rate,
			LoanTermMonths: 360,
			OriginationFee: origination,
			ProcessingFee:  1500,
		}
	default:
		return credit.Pricing{
			InterestRate:   6.5 + float64(750-borrower.CreditScore)*0.01,
			LoanTermMonths: 360,
			MonthlyPayment: loanAmount * 0.006,
			OriginationFee: loanAmount * 0.01,
			ProcessingFee:  1500,
			TotalFees:      loanAmount*0.01 + 1500,
		}
	}
}

func riskRating(key string, borrower credit.Borrower) string {
	if key == "robert" {
		return "Pending Assessment"
	}
	if borrower.CreditScore > 700 {
		return "Medium"
	}
	return "Medium-High"
}

func conditionsFor(key string) []string {
	switch key {
	case "robert":
		return []string{
			"Complete credit application required",
			"Income verification needed",
			"Employment history documentation required",
			"Asset and liability statements needed",
			"Property appraisal pending",
			"Complete financial documentation required",
		}
	case "sarah":
		return []string{
			"Credit score verification required",
			"Debt-to-income ratio calculation needed",
			"Asset documentation required",
			"Property appraisal completion",
			"Clear title search",
		}
	case "michael":
		return []string{
			"Income verification required",
			"Employment history documentation needed",
			"Property appraisal completion",
			"Clear title search",
			"Homeowner's insurance policy",
		}
	case "emily":
		return []string{
			"Liability statement required",
			"Property appraisal completion",
			"Clear title search",
			"Homeowner's insurance policy",
		}
	default:
		return []string{
			"Property appraisal completion",
			"Clear title search",
			"Homeowner's insurance policy",
			"Final underwriting review",
		}
	}
}

func covenantsFor(key string) []string {
	if key == "robert" {
		return []string{"Covenants to be determined upon completion of application"}
	}
	return []string{
		"Maintain property insurance",
		"Pay property taxes timely",
		"Notify lender of address changes",
		"Maintain property in good condition",
	}
}

func guarantorsFor(key string) []string {
	switch key {
	case "robert", "sarah":
		return []string{"Guarantor information pending"}
	case "michael":
		return []string{"Co-signer may be required"}
	default:
		return []string{}
	}
}

func regulatoryNotesFor(key string) string {
	switch key {
	case "robert":
		return "Regulatory compliance review pending - incomplete application"
	case "sarah", "michael":
		return "TRID and QM compliance review in progress"
	default:
		return "Complies with TRID and QM requirements"
	}
}
