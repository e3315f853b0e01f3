package credit

import "github.com/agentic-lender/lendermemo/pkg/domain/types"

// Request is the summary row shown in the credit request listing.
type Request struct {
	RequestID    types.RequestID `json:"request_id"`
	BorrowerName string          `json:"borrower_name"`
	LoanAmount   float64         `json:"loan_amount"`
	Status       string          `json:"status"`
}

// Borrower holds the applicant's financial profile. Zero values signal data
// the applicant has not provided yet, not literal zeroes.
type Borrower struct {
	Name              string  `json:"name"`
	CreditScore       int     `json:"credit_score"`
	AnnualIncome      float64 `json:"annual_income"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
	EmploymentHistory string  `json:"employment_history"`
	Assets            float64 `json:"assets"`
	Liabilities       float64 `json:"liabilities"`
}

type Collateral struct {
	PropertyType  string  `json:"property_type"`
	PropertyValue float64 `json:"property_value"`
	LTVRatio      float64 `json:"ltv_ratio"`
	AppraisalDate string  `json:"appraisal_date"`
	Address       string  `json:"address"`
}

type Pricing struct {
	InterestRate   float64 `json:"interest_rate"`
	LoanTermMonths int     `json:"loan_term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	OriginationFee float64 `json:"origination_fee"`
	ProcessingFee  float64 `json:"processing_fee"`
	TotalFees      float64 `json:"total_fees"`
}

// Detail is the full credit request record consumed from the data provider.
// It is read-only input once fetched; nothing in this service mutates it.
type Detail struct {
	RequestID       types.RequestID `json:"request_id"`
	Borrower        Borrower        `json:"borrower"`
	Collateral      Collateral      `json:"collateral"`
	Pricing         Pricing         `json:"pricing"`
	LoanAmount      float64         `json:"loan_amount"`
	LoanPurpose     string          `json:"loan_purpose"`
	Status          string          `json:"status"`
	RiskRating      string          `json:"risk_rating"`
	Conditions      []string        `json:"conditions"`
	Covenants       []string        `json:"covenants"`
	Guarantors      []string        `json:"guarantors"`
	RegulatoryNotes string          `json:"regulatory_notes"`
	CreatedDate     string          `json:"created_date"`
	UpdatedDate     string          `json:"updated_date"`
}
