package models

// Category ключ справочника; каждая категория хранится отдельной коллекцией.
type Category string

const (
	CategoryProjectTypes          Category = "project-types"
	CategoryDepartments           Category = "departments"
	CategoryStatus                Category = "status"
	CategoryEvaluationCriteria    Category = "evaluation-criteria"
	CategoryTechnicalRequirements Category = "technical-requirements"
	CategorySuppliers             Category = "suppliers"
	CategoryComplianceStatus      Category = "compliance-status"
	CategoryEvaluationCommittee   Category = "evaluation-committee"
	CategoryPaymentTerms          Category = "payment-terms"
	CategoryContractStatus        Category = "contract-status"
	CategoryTenderMethods         Category = "tender-methods"
)

// Categories lists the reference lists in display order.
var Categories = []Category{
	CategoryProjectTypes,
	CategoryDepartments,
	CategoryStatus,
	CategoryEvaluationCriteria,
	CategoryTechnicalRequirements,
	CategorySuppliers,
	CategoryComplianceStatus,
	CategoryEvaluationCommittee,
	CategoryPaymentTerms,
	CategoryContractStatus,
	CategoryTenderMethods,
}

func ValidCategory(c Category) bool {
	switch c {
	case CategoryProjectTypes, CategoryDepartments, CategoryStatus, CategoryEvaluationCriteria,
		CategoryTechnicalRequirements, CategorySuppliers, CategoryComplianceStatus,
		CategoryEvaluationCommittee, CategoryPaymentTerms, CategoryContractStatus, CategoryTenderMethods:
		return true
	default:
		return false
	}
}

// Элемент справочника
type DefinitionItem struct {
	Meta
	Code   Code   `json:"code"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Notes  string `json:"notes"`
}

// Name returns the label for the requested language.
func (d DefinitionItem) Name(lang Language) string {
	if lang == LanguageEnglish {
		return d.NameEn
	}
	return d.NameAr
}
