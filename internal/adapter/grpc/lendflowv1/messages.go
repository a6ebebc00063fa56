// Package lendflowv1 defines the lendflow.v1.LendFlowService wire contract.
// Messages travel as JSON (see codec.go); money is a decimal string and times are protobuf timestamps.
package lendflowv1

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Account struct {
	Id            string                 `json:"id"`
	BorrowerName  string                 `json:"borrower_name"`
	AccountNumber string                 `json:"account_number"`
	BankId        string                 `json:"bank_id,omitempty"`
	Email         string                 `json:"email,omitempty"`
	Phone         string                 `json:"phone,omitempty"`
	Address       string                 `json:"address,omitempty"`
	Balance       string                 `json:"balance"`
	Version       int64                  `json:"version"`
	CreatedAt     *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type LoanProduct struct {
	Id           string                 `json:"id"`
	ProductCode  string                 `json:"product_code"`
	Name         string                 `json:"name"`
	CategoryName string                 `json:"category_name,omitempty"`
	BankId       string                 `json:"bank_id"`
	InterestRate string                 `json:"interest_rate"`
	MinAmount    string                 `json:"min_amount"`
	MaxAmount    string                 `json:"max_amount"`
	TenureMonths int32                  `json:"tenure_months"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type LoanApplication struct {
	Id                string                 `json:"id"`
	ApplicationNumber string                 `json:"application_number"`
	AccountId         string                 `json:"account_id"`
	LoanProductId     string                 `json:"loan_product_id"`
	BankId            string                 `json:"bank_id,omitempty"`
	Amount            string                 `json:"amount"`
	InterestRate      string                 `json:"interest_rate"`
	TenureMonths      int32                  `json:"tenure_months"`
	Status            string                 `json:"status"`
	AppliedBy         string                 `json:"applied_by"`
	AppliedAt         *timestamppb.Timestamp `json:"applied_at,omitempty"`
	ReviewedBy        string                 `json:"reviewed_by,omitempty"`
	ReviewedAt        *timestamppb.Timestamp `json:"reviewed_at,omitempty"`
	Remarks           string                 `json:"remarks,omitempty"`
	Version           int64                  `json:"version"`
}

type Installment struct {
	Number          int32                  `json:"number"`
	DueDate         *timestamppb.Timestamp `json:"due_date"`
	PrincipalAmount string                 `json:"principal_amount"`
	InterestAmount  string                 `json:"interest_amount"`
	TotalAmount     string                 `json:"total_amount"`
	Status          string                 `json:"status"`
	PaidAt          *timestamppb.Timestamp `json:"paid_at,omitempty"`
}

type Disbursement struct {
	Id                 string                 `json:"id"`
	DisbursementNumber string                 `json:"disbursement_number"`
	LoanApplicationId  string                 `json:"loan_application_id"`
	AccountId          string                 `json:"account_id"`
	Amount             string                 `json:"amount"`
	DisbursedTo        string                 `json:"disbursed_to"`
	DisbursedBy        string                 `json:"disbursed_by"`
	DisbursedAt        *timestamppb.Timestamp `json:"disbursed_at"`
	Schedule           []*Installment         `json:"schedule"`
	Version            int64                  `json:"version"`
}

type Adjustment struct {
	Id                string                 `json:"id"`
	AdjustmentNumber  string                 `json:"adjustment_number"`
	LoanApplicationId string                 `json:"loan_application_id"`
	AccountId         string                 `json:"account_id"`
	AdjustmentType    string                 `json:"adjustment_type"`
	Amount            string                 `json:"amount"`
	Reason            string                 `json:"reason"`
	ApprovedBy        string                 `json:"approved_by"`
	AdjustedAt        *timestamppb.Timestamp `json:"adjusted_at"`
}

type OpenAccountRequest struct {
	BorrowerName   string `json:"borrower_name"`
	AccountNumber  string `json:"account_number"`
	BankId         string `json:"bank_id,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	OpeningBalance string `json:"opening_balance,omitempty"`
}

type OpenAccountResponse struct {
	Account *Account `json:"account"`
}

type GetAccountRequest struct {
	AccountId string `json:"account_id"`
}

type GetAccountResponse struct {
	Account *Account `json:"account"`
}

type CreateLoanProductRequest struct {
	ProductCode  string `json:"product_code"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name,omitempty"`
	BankId       string `json:"bank_id"`
	InterestRate string `json:"interest_rate"`
	MinAmount    string `json:"min_amount"`
	MaxAmount    string `json:"max_amount"`
	TenureMonths int32  `json:"tenure_months"`
}

type CreateLoanProductResponse struct {
	Product *LoanProduct `json:"product"`
}

type ListLoanProductsRequest struct {
	// BankId filters by bank when set
	BankId string `json:"bank_id,omitempty"`
}

type ListLoanProductsResponse struct {
	Products []*LoanProduct `json:"products"`
}

type SubmitApplicationRequest struct {
	AccountId     string `json:"account_id"`
	LoanProductId string `json:"loan_product_id"`
	Amount        string `json:"amount"`
}

type SubmitApplicationResponse struct {
	Application *LoanApplication `json:"application"`
}

// ReviewApplicationRequest is shared by ApproveApplication and RejectApplication
type ReviewApplicationRequest struct {
	ApplicationId string `json:"application_id"`
	Remarks       string `json:"remarks,omitempty"`
}

type ReviewApplicationResponse struct {
	Application *LoanApplication `json:"application"`
}

type ListDisbursableApplicationsRequest struct{}

type ListDisbursableApplicationsResponse struct {
	Applications []*LoanApplication `json:"applications"`
}

type DisburseLoanRequest struct {
	ApplicationId string                 `json:"application_id"`
	DisbursedTo   string                 `json:"disbursed_to,omitempty"`
	DisbursedAt   *timestamppb.Timestamp `json:"disbursed_at,omitempty"`
}

type DisburseLoanResponse struct {
	Disbursement *Disbursement `json:"disbursement"`
}

// GetDisbursementRequest looks a disbursement up by its own ID when DisbursementId is set,
// otherwise by the application it funded
type GetDisbursementRequest struct {
	ApplicationId  string `json:"application_id"`
	DisbursementId string `json:"disbursement_id"`
}

type GetDisbursementResponse struct {
	Disbursement *Disbursement `json:"disbursement"`
}

type ApplyAdjustmentRequest struct {
	ApplicationId  string `json:"application_id"`
	AdjustmentType string `json:"adjustment_type"`
	Amount         string `json:"amount"`
	Reason         string `json:"reason"`
}

type ApplyAdjustmentResponse struct {
	Adjustment *Adjustment `json:"adjustment"`
	Balance    string      `json:"balance"`
	Status     string      `json:"status"`
}

type ListAdjustmentsRequest struct {
	// ApplicationId filters by application when set
	ApplicationId string `json:"application_id,omitempty"`
}

type ListAdjustmentsResponse struct {
	Adjustments []*Adjustment `json:"adjustments"`
}

type MarkInstallmentPaidRequest struct {
	ApplicationId     string                 `json:"application_id"`
	InstallmentNumber int32                  `json:"installment_number"`
	PaidAt            *timestamppb.Timestamp `json:"paid_at,omitempty"`
}

type MarkInstallmentPaidResponse struct {
	Disbursement *Disbursement `json:"disbursement"`
}

type MarkOverdueInstallmentsRequest struct {
	AsOf *timestamppb.Timestamp `json:"as_of,omitempty"`
}

type MarkOverdueInstallmentsResponse struct {
	Updated int32 `json:"updated"`
}

type PreviewScheduleRequest struct {
	Principal    string                 `json:"principal"`
	InterestRate string                 `json:"interest_rate"`
	TenureMonths int32                  `json:"tenure_months"`
	StartDate    *timestamppb.Timestamp `json:"start_date,omitempty"`
}

type PreviewScheduleResponse struct {
	Emi           string         `json:"emi"`
	TotalPayable  string         `json:"total_payable"`
	TotalInterest string         `json:"total_interest"`
	Schedule      []*Installment `json:"schedule"`
}

type GetPortfolioSummaryRequest struct{}

type GetPortfolioSummaryResponse struct {
	ApplicationsByStatus map[string]int32 `json:"applications_by_status"`
	TotalApplications    int32            `json:"total_applications"`
	ActiveLoans          int32            `json:"active_loans"`
	TotalDisbursed       string           `json:"total_disbursed"`
	OutstandingPrincipal string           `json:"outstanding_principal"`
	TotalAdjusted        string           `json:"total_adjusted"`
	AdjustmentCount      int32            `json:"adjustment_count"`
}

type Bank struct {
	Id                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	Address            string                 `json:"address,omitempty"`
	Phone              string                 `json:"phone,omitempty"`
	RegistrationNumber string                 `json:"registration_number"`
	IsActive           bool                   `json:"is_active"`
	CreatedAt          *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type LoanCategory struct {
	Id          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	BankId      string                 `json:"bank_id,omitempty"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type CreateBankRequest struct {
	Id                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Address            string `json:"address,omitempty"`
	Phone              string `json:"phone,omitempty"`
	RegistrationNumber string `json:"registration_number"`
	// IsActive defaults to true when omitted
	IsActive *bool `json:"is_active,omitempty"`
}

type CreateBankResponse struct {
	Bank *Bank `json:"bank"`
}

type ListBanksRequest struct{}

type ListBanksResponse struct {
	Banks []*Bank `json:"banks"`
}

type CreateLoanCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// BankId makes the category private to one bank; empty shares it
	BankId string `json:"bank_id,omitempty"`
}

type CreateLoanCategoryResponse struct {
	Category *LoanCategory `json:"category"`
}

type ListLoanCategoriesRequest struct {
	// BankId narrows to shared categories plus that bank's own when set
	BankId string `json:"bank_id,omitempty"`
}

type ListLoanCategoriesResponse struct {
	Categories []*LoanCategory `json:"categories"`
}

type GetApplicationRequest struct {
	ApplicationId string `json:"application_id"`
}

type GetApplicationResponse struct {
	Application *LoanApplication `json:"application"`
}

type ListApplicationsRequest struct {
	// Status filters by lifecycle status when set
	Status string `json:"status,omitempty"`
}

type ListApplicationsResponse struct {
	Applications []*LoanApplication `json:"applications"`
}
