package views

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"procurement/models"
)

// DisplayName resolves a code against its reference list. A dangling code is shown as is.
func DisplayName(items []models.DefinitionItem, code models.Code, lang models.Language) string {
	if it, ok := lo.Find(items, func(it models.DefinitionItem) bool { return it.Code == code }); ok {
		return it.Name(lang)
	}
	return string(code)
}

// TenderLabel is "<tenderId> - <title>", or the raw id for an unknown tender.
func TenderLabel(tenders []models.Tender, id models.ID) string {
	if t, ok := lo.Find(tenders, func(t models.Tender) bool { return t.ID == id }); ok {
		return fmt.Sprintf("%s - %s", t.TenderID, t.TenderTitle)
	}
	return string(id)
}

func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func normalize(q string) string { return strings.ToLower(strings.TrimSpace(q)) }

// Поиск по спискам. Пустой запрос возвращает все записи.

func SearchDefinitions(items []models.DefinitionItem, q string) []models.DefinitionItem {
	q = normalize(q)
	if q == "" {
		return items
	}
	return lo.Filter(items, func(it models.DefinitionItem, _ int) bool {
		return contains(string(it.Code), q) || contains(it.NameAr, q) || contains(it.NameEn, q)
	})
}

func SearchProjects(projects []models.Project, q string) []models.Project {
	q = normalize(q)
	if q == "" {
		return projects
	}
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		return contains(p.ProjectTitle, q) || contains(p.ProjectNumber, q) || contains(p.Location, q)
	})
}

func SearchTenders(tenders []models.Tender, q string) []models.Tender {
	q = normalize(q)
	if q == "" {
		return tenders
	}
	return lo.Filter(tenders, func(t models.Tender, _ int) bool {
		return contains(t.TenderTitle, q) || contains(t.TenderID, q)
	})
}

// SearchBids matches the tender label or the supplier's display name.
func SearchBids(bids []models.Bid, tenders []models.Tender, suppliers []models.DefinitionItem, lang models.Language, q string) []models.Bid {
	q = normalize(q)
	if q == "" {
		return bids
	}
	return lo.Filter(bids, func(b models.Bid, _ int) bool {
		return contains(TenderLabel(tenders, b.TenderID), q) ||
			contains(DisplayName(suppliers, b.SupplierName, lang), q)
	})
}

func SearchEvaluations(evaluations []models.BidEvaluation, tenders []models.Tender, q string) []models.BidEvaluation {
	q = normalize(q)
	if q == "" {
		return evaluations
	}
	return lo.Filter(evaluations, func(e models.BidEvaluation, _ int) bool {
		return contains(e.SupplierName, q) || contains(TenderLabel(tenders, e.TenderID), q)
	})
}

// SearchContracts also filters by status code when status is not empty.
func SearchContracts(contracts []models.Contract, suppliers []models.DefinitionItem, lang models.Language, q string, status models.Code) []models.Contract {
	q = normalize(q)
	return lo.Filter(contracts, func(c models.Contract, _ int) bool {
		if status != "" && c.ContractStatus != status {
			return false
		}
		if q == "" {
			return true
		}
		return contains(c.ContractNumber, q) || contains(c.ContractTitle, q) ||
			contains(DisplayName(suppliers, c.SupplierName, lang), q)
	})
}
