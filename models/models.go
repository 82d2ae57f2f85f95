package models

import (
	"errors"
	"time"
)

// ID идентификатор записи внутри одной коллекции.
type ID string

// Code стабильный код из справочника (поставщик, статус, условия оплаты и т.д.).
type Code string

// Meta общие поля всех сущностей.
type Meta struct {
	ID        ID        `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Base gives generic collections access to the shared fields.
func (m *Meta) Base() *Meta { return m }

// Вложение (тендер, договор) или документ предложения.
type Attachment struct {
	ID         ID        `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Сущность Проекта
type Project struct {
	Meta
	ProjectTitle          string  `json:"projectTitle"`
	ProjectNumber         string  `json:"projectNumber"`
	ProjectDescription    string  `json:"projectDescription"`
	ProjectType           Code    `json:"projectType"`
	Location              string  `json:"location"`
	EstimatedBudget       float64 `json:"estimatedBudget"`
	StartDate             string  `json:"startDate"`
	EndDate               string  `json:"endDate"`
	DepartmentResponsible Code    `json:"departmentResponsible"`
	Status                Code    `json:"status"`
}

// Сущность Тендера
type Tender struct {
	Meta
	TenderID              string       `json:"tenderId"`
	ProjectReference      ID           `json:"projectReference"`
	TenderTitle           string       `json:"tenderTitle"`
	TenderType            string       `json:"tenderType"`
	TenderMethod          Code         `json:"tenderMethod"`
	BudgetReference       string       `json:"budgetReference"`
	TenderIssueDate       string       `json:"tenderIssueDate"`
	TenderClosingDate     string       `json:"tenderClosingDate"`
	TenderDescription     string       `json:"tenderDescription"`
	EvaluationCriteria    []Code       `json:"evaluationCriteria"`
	TechnicalRequirements []Code       `json:"technicalRequirements"`
	Attachments           []Attachment `json:"attachments"`
}

// Сущность Предложения
type Bid struct {
	Meta
	TenderID            ID           `json:"tenderId"`
	SupplierName        Code         `json:"supplierName"`
	BidAmount           float64      `json:"bidAmount"`
	SubmissionDate      string       `json:"submissionDate"`
	BidValidityPeriod   string       `json:"bidValidityPeriod"`
	TechnicalDocuments  []Attachment `json:"technicalDocuments"`
	CommercialDocuments []Attachment `json:"commercialDocuments"`
	ComplianceStatus    Code         `json:"complianceStatus"`
	Notes               string       `json:"notes"`
}

// Сущность Оценки предложения
type BidEvaluation struct {
	Meta
	TenderID            ID      `json:"tenderId"`
	BidID               ID      `json:"bidId"`
	SupplierName        string  `json:"supplierName"`
	TechnicalScore      float64 `json:"technicalScore"`
	FinancialScore      float64 `json:"financialScore"`
	FinalScore          float64 `json:"finalScore"`
	EvaluationComments  string  `json:"evaluationComments"`
	EvaluationCommittee Code    `json:"evaluationCommittee"`
	EvaluatedBy         string  `json:"evaluatedBy"`
	EvaluationDate      string  `json:"evaluationDate"`
}

// Гарантия исполнения договора
type PerformanceBond struct {
	BondNumber     string  `json:"bondNumber"`
	BondValue      float64 `json:"bondValue"`
	BondPercentage float64 `json:"bondPercentage"`
	IssueDate      string  `json:"issueDate"`
	ExpiryDate     string  `json:"expiryDate"`
	BankName       string  `json:"bankName"`
	BondType       string  `json:"bondType"`
}

// Сущность Договора
type Contract struct {
	Meta
	ContractNumber      string          `json:"contractNumber"`
	ContractTitle       string          `json:"contractTitle"`
	SupplierName        Code            `json:"supplierName"`
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	ContractValue       float64         `json:"contractValue"`
	PaymentTerms        Code            `json:"paymentTerms"`
	ContractAttachments []Attachment    `json:"contractAttachments"`
	ContractStatus      Code            `json:"contractStatus"`
	PerformanceBond     PerformanceBond `json:"performanceBond"`
	RelatedTenderID     ID              `json:"relatedTenderId,omitempty"`
	RelatedBidID        ID              `json:"relatedBidId,omitempty"`
}

// ContractStatusActive is the only status code the active/expiring views look at.
const ContractStatusActive Code = "ACTIVE"

// Сводка оценок по тендеру
type EvaluationSummary struct {
	TenderID      ID             `json:"tenderId"`
	TenderTitle   string         `json:"tenderTitle"`
	TotalBids     int            `json:"totalBids"`
	EvaluatedBids int            `json:"evaluatedBids"`
	TopBid        *BidEvaluation `json:"topBid"`
	AverageScore  float64        `json:"averageScore"`
}

// Language интерфейсный язык пользователя.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"

	DefaultLanguage = LanguageArabic
)

var ErrInvalidLanguage = errors.New("language must be 'ar' or 'en'")

func ValidLanguage(l Language) bool {
	switch l {
	case LanguageArabic, LanguageEnglish:
		return true
	default:
		return false
	}
}

// ParseDate accepts the date-only form used by the forms and full RFC 3339 timestamps.
// An empty or malformed value reports ok=false.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
