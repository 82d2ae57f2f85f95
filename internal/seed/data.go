package seed

import "procurement/models"

func def(code models.Code, ar, en, notes string) models.DefinitionItem {
	return models.DefinitionItem{Code: code, NameAr: ar, NameEn: en, Notes: notes}
}

// Справочники по категориям.
var definitions = map[models.Category][]models.DefinitionItem{
	models.CategoryProjectTypes: {
		def("CONST", "إنشاءات", "Construction", "Civil and building works"),
		def("IT", "تقنية المعلومات", "Information Technology", "Software, hardware and networks"),
		def("SUPPLY", "توريد", "Supply", "Goods and materials"),
		def("MAINT", "صيانة وتشغيل", "Maintenance & Operation", "Recurring maintenance contracts"),
		def("CONSULT", "خدمات استشارية", "Consulting Services", "Studies, design and supervision"),
	},
	models.CategoryDepartments: {
		def("PROC", "إدارة المشتريات", "Procurement Department", ""),
		def("ENG", "الإدارة الهندسية", "Engineering Department", ""),
		def("IT", "إدارة تقنية المعلومات", "IT Department", ""),
		def("FIN", "الإدارة المالية", "Finance Department", ""),
		def("ADMIN", "الشؤون الإدارية", "Administration", ""),
	},
	models.CategoryStatus: {
		def("DRAFT", "مسودة", "Draft", ""),
		def("PUBLISHED", "منشورة", "Published", ""),
		def("CLOSED", "مغلقة", "Closed", ""),
		def("EVAL", "قيد التقييم", "Under Evaluation", ""),
		def("AWARDED", "تمت الترسية", "Awarded", ""),
		def("CANCELLED", "ملغاة", "Cancelled", ""),
	},
	models.CategoryEvaluationCriteria: {
		def("PRICE", "السعر", "Price", "Financial offer"),
		def("TECH", "الجودة الفنية", "Technical Quality", "Compliance with the technical scope"),
		def("EXP", "الخبرة السابقة", "Previous Experience", "Similar projects delivered"),
		def("QUALITY", "ضمان الجودة", "Quality Assurance", ""),
		def("TIME", "مدة التنفيذ", "Delivery Time", ""),
		def("SUPPORT", "الدعم الفني", "Technical Support", "After-sales support"),
	},
	models.CategoryTechnicalRequirements: {
		def("CERT", "الشهادات المعتمدة", "Certifications", "ISO or equivalent"),
		def("STANDARD", "المطابقة للمواصفات", "Standards Compliance", ""),
		def("PERFORM", "متطلبات الأداء", "Performance Requirements", ""),
		def("SECURITY", "متطلبات الأمن", "Security Requirements", ""),
		def("COMPAT", "التوافق مع الأنظمة", "System Compatibility", ""),
	},
	models.CategorySuppliers: {
		def("SUP001", "شركة البناء المتقدم", "Advanced Construction Co.", "Contractor grade 1"),
		def("SUP002", "مؤسسة الحلول التقنية", "Tech Solutions Est.", ""),
		def("SUP003", "شركة التوريدات الشاملة", "Comprehensive Supplies Co.", ""),
		def("SUP004", "مجموعة الصيانة المتكاملة", "Integrated Maintenance Group", ""),
		def("SUP005", "دار الاستشارات الهندسية", "Engineering Consultancy House", ""),
	},
	models.CategoryComplianceStatus: {
		def("COMPLIANT", "مطابق", "Compliant", ""),
		def("PARTIAL", "مطابق جزئياً", "Partially Compliant", ""),
		def("NON_COMPLIANT", "غير مطابق", "Non-Compliant", ""),
		def("PENDING", "قيد المراجعة", "Pending Review", ""),
		def("CONDITIONAL", "مطابق بشروط", "Conditionally Compliant", ""),
	},
	models.CategoryEvaluationCommittee: {
		def("TECH_COMM", "اللجنة الفنية", "Technical Committee", ""),
		def("FIN_COMM", "اللجنة المالية", "Financial Committee", ""),
		def("LEGAL_COMM", "اللجنة القانونية", "Legal Committee", ""),
		def("MAIN_COMM", "لجنة فحص العروض", "Bid Review Committee", ""),
		def("SPEC_COMM", "لجنة متخصصة", "Specialized Committee", ""),
	},
	models.CategoryPaymentTerms: {
		def("ADVANCE", "دفعة مقدمة", "Advance Payment", "Usually 10% against a guarantee"),
		def("MILESTONE", "حسب المراحل", "Milestone Payments", ""),
		def("DELIVERY", "عند التسليم", "Payment on Delivery", ""),
		def("NET30", "خلال 30 يوماً", "Net 30 Days", ""),
		def("NET60", "خلال 60 يوماً", "Net 60 Days", ""),
		def("RETENTION", "محتجزات ضمان", "Retention", "Released after final acceptance"),
	},
	models.CategoryContractStatus: {
		def("DRAFT", "مسودة", "Draft", ""),
		def("REVIEW", "قيد المراجعة", "Under Review", ""),
		def("APPROVED", "معتمد", "Approved", ""),
		def("SIGNED", "موقع", "Signed", ""),
		def("ACTIVE", "ساري", "Active", ""),
		def("COMPLETED", "منتهي", "Completed", ""),
		def("TERMINATED", "مفسوخ", "Terminated", ""),
	},
	models.CategoryTenderMethods: {
		def("OPEN", "منافسة عامة", "Open Tender", ""),
		def("RESTRICTED", "منافسة محدودة", "Restricted Tender", ""),
		def("SELECTIVE", "منافسة انتقائية", "Selective Tender", ""),
		def("NEGOTIATED", "شراء مباشر", "Negotiated Procurement", ""),
		def("FRAMEWORK", "اتفاقية إطارية", "Framework Agreement", ""),
		def("ELECTRONIC", "مزايدة إلكترونية", "Electronic Tender", ""),
	},
}

var projects = []models.Project{
	{
		ProjectTitle:          "إنشاء مبنى الإدارة العامة",
		ProjectNumber:         "PRJ-2024-001",
		ProjectDescription:    "Headquarters building, four floors with parking",
		ProjectType:           "CONST",
		Location:              "Riyadh",
		EstimatedBudget:       15000000,
		StartDate:             "2024-01-15",
		EndDate:               "2025-12-31",
		DepartmentResponsible: "ENG",
		Status:                "PUBLISHED",
	},
	{
		ProjectTitle:          "تطوير نظام تخطيط الموارد",
		ProjectNumber:         "PRJ-2024-002",
		ProjectDescription:    "ERP implementation for finance and procurement",
		ProjectType:           "IT",
		Location:              "Jeddah",
		EstimatedBudget:       3200000,
		StartDate:             "2024-03-01",
		EndDate:               "2025-02-28",
		DepartmentResponsible: "IT",
		Status:                "EVAL",
	},
	{
		ProjectTitle:          "توريد أثاث مكتبي",
		ProjectNumber:         "PRJ-2024-003",
		ProjectDescription:    "Office furniture for the new branches",
		ProjectType:           "SUPPLY",
		Location:              "Dammam",
		EstimatedBudget:       850000,
		StartDate:             "2024-05-01",
		EndDate:               "2024-09-30",
		DepartmentResponsible: "PROC",
		Status:                "AWARDED",
	},
	{
		ProjectTitle:          "عقد صيانة المباني",
		ProjectNumber:         "PRJ-2024-004",
		ProjectDescription:    "Three-year preventive maintenance of all facilities",
		ProjectType:           "MAINT",
		Location:              "Riyadh",
		EstimatedBudget:       2400000,
		StartDate:             "2024-07-01",
		EndDate:               "2027-06-30",
		DepartmentResponsible: "ADMIN",
		Status:                "DRAFT",
	},
}

// Оценки ссылаются на тендеры и предложения по коду; без загруженных тендеров ссылки висячие.
var evaluations = []models.BidEvaluation{
	{
		TenderID:            "TND-2024-001",
		BidID:               "BID-001",
		SupplierName:        "SUP001",
		TechnicalScore:      88,
		FinancialScore:      92,
		FinalScore:          89.6,
		EvaluationComments:  "Strong technical offer, lowest price",
		EvaluationCommittee: "MAIN_COMM",
		EvaluatedBy:         "Ahmed Al-Harbi",
		EvaluationDate:      "2024-04-10",
	},
	{
		TenderID:            "TND-2024-001",
		BidID:               "BID-002",
		SupplierName:        "SUP003",
		TechnicalScore:      75,
		FinancialScore:      80,
		FinalScore:          77,
		EvaluationComments:  "Meets requirements, limited experience",
		EvaluationCommittee: "MAIN_COMM",
		EvaluatedBy:         "Ahmed Al-Harbi",
		EvaluationDate:      "2024-04-10",
	},
	{
		TenderID:            "TND-2024-002",
		BidID:               "BID-003",
		SupplierName:        "SUP002",
		TechnicalScore:      94,
		FinancialScore:      70,
		FinalScore:          84.4,
		EvaluationComments:  "Best architecture, above budget",
		EvaluationCommittee: "TECH_COMM",
		EvaluatedBy:         "Sara Al-Qahtani",
		EvaluationDate:      "2024-06-02",
	},
}

var contracts = []models.Contract{
	{
		ContractNumber: "CNT-2024-001",
		ContractTitle:  "عقد إنشاء مبنى الإدارة العامة",
		SupplierName:   "SUP001",
		StartDate:      "2024-05-01",
		EndDate:        "2026-04-30",
		ContractValue:  14250000,
		PaymentTerms:   "MILESTONE",
		ContractStatus: "ACTIVE",
		PerformanceBond: models.PerformanceBond{
			BondNumber:     "PB-2024-001",
			BondValue:      1425000,
			BondPercentage: 10,
			IssueDate:      "2024-04-25",
			ExpiryDate:     "2026-07-31",
			BankName:       "Al Rajhi Bank",
			BondType:       "performance",
		},
	},
	{
		ContractNumber: "CNT-2024-002",
		ContractTitle:  "عقد توريد الأثاث المكتبي",
		SupplierName:   "SUP003",
		StartDate:      "2024-08-01",
		EndDate:        "2024-12-31",
		ContractValue:  790000,
		PaymentTerms:   "DELIVERY",
		ContractStatus: "COMPLETED",
		PerformanceBond: models.PerformanceBond{
			BondNumber:     "PB-2024-002",
			BondValue:      39500,
			BondPercentage: 5,
			IssueDate:      "2024-07-20",
			ExpiryDate:     "2025-03-31",
			BankName:       "Saudi National Bank",
			BondType:       "performance",
		},
	},
	{
		ContractNumber: "CNT-2024-003",
		ContractTitle:  "عقد تطوير نظام تخطيط الموارد",
		SupplierName:   "SUP002",
		StartDate:      "2024-07-01",
		EndDate:        "2027-06-30",
		ContractValue:  3450000,
		PaymentTerms:   "ADVANCE",
		ContractStatus: "SIGNED",
		PerformanceBond: models.PerformanceBond{
			BondNumber:     "PB-2024-003",
			BondValue:      345000,
			BondPercentage: 10,
			IssueDate:      "2024-06-25",
			ExpiryDate:     "2027-09-30",
			BankName:       "Riyad Bank",
			BondType:       "performance",
		},
	},
}
