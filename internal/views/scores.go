// Package views derives read-only figures from the stored collections: scores, rankings,
// per-tender summaries, contract windows and dashboard counts. Nothing here is cached.
package views

import (
	"github.com/shopspring/decimal"

	"procurement/models"
)

// Default weights of the final score.
const (
	TechnicalWeight = 0.6
	FinancialWeight = 0.4
)

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FinalScore = round2(technical*0.6 + financial*0.4). Inputs are not clamped.
func FinalScore(technical, financial float64) float64 {
	return WeightedScore(technical, financial, TechnicalWeight, FinancialWeight)
}

func WeightedScore(technical, financial, techWeight, finWeight float64) float64 {
	t := decimal.NewFromFloat(technical).Mul(decimal.NewFromFloat(techWeight))
	f := decimal.NewFromFloat(financial).Mul(decimal.NewFromFloat(finWeight))
	return t.Add(f).Round(2).InexactFloat64()
}

// BondValue = round2(contractValue * percentage / 100).
func BondValue(contractValue, percentage float64) float64 {
	return decimal.NewFromFloat(contractValue).
		Mul(decimal.NewFromFloat(percentage)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// Grade is the score band shown next to an evaluation.
type Grade string

const (
	GradeExcellent  Grade = "excellent"
	GradeVeryGood   Grade = "very-good"
	GradeGood       Grade = "good"
	GradeAcceptable Grade = "acceptable"
	GradeWeak       Grade = "weak"
)

var gradeLabels = map[Grade][2]string{
	GradeExcellent:  {"ممتاز", "Excellent"},
	GradeVeryGood:   {"جيد جداً", "Very Good"},
	GradeGood:       {"جيد", "Good"},
	GradeAcceptable: {"مقبول", "Acceptable"},
	GradeWeak:       {"ضعيف", "Poor"},
}

func GradeOf(score float64) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 80:
		return GradeVeryGood
	case score >= 70:
		return GradeGood
	case score >= 60:
		return GradeAcceptable
	default:
		return GradeWeak
	}
}

func (g Grade) Label(lang models.Language) string {
	l, ok := gradeLabels[g]
	if !ok {
		return string(g)
	}
	if lang == models.LanguageEnglish {
		return l[1]
	}
	return l[0]
}
