package models

// Частичные обновления: nil-поле означает "не менять".

type DefinitionPatch struct {
	Code   *Code   `json:"code"`
	NameAr *string `json:"nameAr"`
	NameEn *string `json:"nameEn"`
	Notes  *string `json:"notes"`
}

func (p DefinitionPatch) Apply(d *DefinitionItem) {
	set(&d.Code, p.Code)
	set(&d.NameAr, p.NameAr)
	set(&d.NameEn, p.NameEn)
	set(&d.Notes, p.Notes)
}

type ProjectPatch struct {
	ProjectTitle          *string  `json:"projectTitle"`
	ProjectNumber         *string  `json:"projectNumber"`
	ProjectDescription    *string  `json:"projectDescription"`
	ProjectType           *Code    `json:"projectType"`
	Location              *string  `json:"location"`
	EstimatedBudget       *float64 `json:"estimatedBudget"`
	StartDate             *string  `json:"startDate"`
	EndDate               *string  `json:"endDate"`
	DepartmentResponsible *Code    `json:"departmentResponsible"`
	Status                *Code    `json:"status"`
}

func (p ProjectPatch) Apply(pr *Project) {
	set(&pr.ProjectTitle, p.ProjectTitle)
	set(&pr.ProjectNumber, p.ProjectNumber)
	set(&pr.ProjectDescription, p.ProjectDescription)
	set(&pr.ProjectType, p.ProjectType)
	set(&pr.Location, p.Location)
	set(&pr.EstimatedBudget, p.EstimatedBudget)
	set(&pr.StartDate, p.StartDate)
	set(&pr.EndDate, p.EndDate)
	set(&pr.DepartmentResponsible, p.DepartmentResponsible)
	set(&pr.Status, p.Status)
}

type TenderPatch struct {
	TenderID              *string       `json:"tenderId"`
	ProjectReference      *ID           `json:"projectReference"`
	TenderTitle           *string       `json:"tenderTitle"`
	TenderType            *string       `json:"tenderType"`
	TenderMethod          *Code         `json:"tenderMethod"`
	BudgetReference       *string       `json:"budgetReference"`
	TenderIssueDate       *string       `json:"tenderIssueDate"`
	TenderClosingDate     *string       `json:"tenderClosingDate"`
	TenderDescription     *string       `json:"tenderDescription"`
	EvaluationCriteria    *[]Code       `json:"evaluationCriteria"`
	TechnicalRequirements *[]Code       `json:"technicalRequirements"`
	Attachments           *[]Attachment `json:"attachments"`
}

func (p TenderPatch) Apply(t *Tender) {
	set(&t.TenderID, p.TenderID)
	set(&t.ProjectReference, p.ProjectReference)
	set(&t.TenderTitle, p.TenderTitle)
	set(&t.TenderType, p.TenderType)
	set(&t.TenderMethod, p.TenderMethod)
	set(&t.BudgetReference, p.BudgetReference)
	set(&t.TenderIssueDate, p.TenderIssueDate)
	set(&t.TenderClosingDate, p.TenderClosingDate)
	set(&t.TenderDescription, p.TenderDescription)
	set(&t.EvaluationCriteria, p.EvaluationCriteria)
	set(&t.TechnicalRequirements, p.TechnicalRequirements)
	set(&t.Attachments, p.Attachments)
}

type BidPatch struct {
	TenderID            *ID           `json:"tenderId"`
	SupplierName        *Code         `json:"supplierName"`
	BidAmount           *float64      `json:"bidAmount"`
	SubmissionDate      *string       `json:"submissionDate"`
	BidValidityPeriod   *string       `json:"bidValidityPeriod"`
	TechnicalDocuments  *[]Attachment `json:"technicalDocuments"`
	CommercialDocuments *[]Attachment `json:"commercialDocuments"`
	ComplianceStatus    *Code         `json:"complianceStatus"`
	Notes               *string       `json:"notes"`
}

func (p BidPatch) Apply(b *Bid) {
	set(&b.TenderID, p.TenderID)
	set(&b.SupplierName, p.SupplierName)
	set(&b.BidAmount, p.BidAmount)
	set(&b.SubmissionDate, p.SubmissionDate)
	set(&b.BidValidityPeriod, p.BidValidityPeriod)
	set(&b.TechnicalDocuments, p.TechnicalDocuments)
	set(&b.CommercialDocuments, p.CommercialDocuments)
	set(&b.ComplianceStatus, p.ComplianceStatus)
	set(&b.Notes, p.Notes)
}

type EvaluationPatch struct {
	TenderID            *ID      `json:"tenderId"`
	BidID               *ID      `json:"bidId"`
	SupplierName        *string  `json:"supplierName"`
	TechnicalScore      *float64 `json:"technicalScore"`
	FinancialScore      *float64 `json:"financialScore"`
	FinalScore          *float64 `json:"finalScore"`
	EvaluationComments  *string  `json:"evaluationComments"`
	EvaluationCommittee *Code    `json:"evaluationCommittee"`
	EvaluatedBy         *string  `json:"evaluatedBy"`
	EvaluationDate      *string  `json:"evaluationDate"`
}

func (p EvaluationPatch) Apply(e *BidEvaluation) {
	set(&e.TenderID, p.TenderID)
	set(&e.BidID, p.BidID)
	set(&e.SupplierName, p.SupplierName)
	set(&e.TechnicalScore, p.TechnicalScore)
	set(&e.FinancialScore, p.FinancialScore)
	set(&e.FinalScore, p.FinalScore)
	set(&e.EvaluationComments, p.EvaluationComments)
	set(&e.EvaluationCommittee, p.EvaluationCommittee)
	set(&e.EvaluatedBy, p.EvaluatedBy)
	set(&e.EvaluationDate, p.EvaluationDate)
}

type ContractPatch struct {
	ContractNumber      *string          `json:"contractNumber"`
	ContractTitle       *string          `json:"contractTitle"`
	SupplierName        *Code            `json:"supplierName"`
	StartDate           *string          `json:"startDate"`
	EndDate             *string          `json:"endDate"`
	ContractValue       *float64         `json:"contractValue"`
	PaymentTerms        *Code            `json:"paymentTerms"`
	ContractAttachments *[]Attachment    `json:"contractAttachments"`
	ContractStatus      *Code            `json:"contractStatus"`
	PerformanceBond     *PerformanceBond `json:"performanceBond"`
	RelatedTenderID     *ID              `json:"relatedTenderId"`
	RelatedBidID        *ID              `json:"relatedBidId"`
}

func (p ContractPatch) Apply(c *Contract) {
	set(&c.ContractNumber, p.ContractNumber)
	set(&c.ContractTitle, p.ContractTitle)
	set(&c.SupplierName, p.SupplierName)
	set(&c.StartDate, p.StartDate)
	set(&c.EndDate, p.EndDate)
	set(&c.ContractValue, p.ContractValue)
	set(&c.PaymentTerms, p.PaymentTerms)
	set(&c.ContractAttachments, p.ContractAttachments)
	set(&c.ContractStatus, p.ContractStatus)
	set(&c.PerformanceBond, p.PerformanceBond)
	set(&c.RelatedTenderID, p.RelatedTenderID)
	set(&c.RelatedBidID, p.RelatedBidID)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
