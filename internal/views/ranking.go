package views

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"procurement/models"
)

// RankedEvaluation is an evaluation with its position inside its tender.
type RankedEvaluation struct {
	models.BidEvaluation
	Rank  int   `json:"rank"`
	Grade Grade `json:"grade"`
}

// Rank groups evaluations by tender id (ascending) and orders each group by final
// score, highest first. Equal scores keep their input order. Ranks start at 1 per group.
func Rank(evaluations []models.BidEvaluation) []RankedEvaluation {
	groups := lo.GroupBy(evaluations, func(e models.BidEvaluation) models.ID { return e.TenderID })
	tenders := lo.Keys(groups)
	slices.Sort(tenders)

	out := make([]RankedEvaluation, 0, len(evaluations))
	for _, id := range tenders {
		group := slices.Clone(groups[id])
		slices.SortStableFunc(group, func(a, b models.BidEvaluation) int {
			return cmp.Compare(b.FinalScore, a.FinalScore)
		})
		for i, e := range group {
			out = append(out, RankedEvaluation{BidEvaluation: e, Rank: i + 1, Grade: GradeOf(e.FinalScore)})
		}
	}
	return out
}

// Summaries builds one summary per tender, in tender order.
func Summaries(tenders []models.Tender, bids []models.Bid, evaluations []models.BidEvaluation) []models.EvaluationSummary {
	bidCount := lo.CountValuesBy(bids, func(b models.Bid) models.ID { return b.TenderID })
	byTender := lo.GroupBy(evaluations, func(e models.BidEvaluation) models.ID { return e.TenderID })

	return lo.Map(tenders, func(t models.Tender, _ int) models.EvaluationSummary {
		group := byTender[t.ID]
		return models.EvaluationSummary{
			TenderID:      t.ID,
			TenderTitle:   t.TenderTitle,
			TotalBids:     bidCount[t.ID],
			EvaluatedBids: len(group),
			TopBid:        topBid(group),
			AverageScore:  averageScore(group),
		}
	})
}

// topBid keeps the first evaluation among equal maxima.
func topBid(group []models.BidEvaluation) *models.BidEvaluation {
	if len(group) == 0 {
		return nil
	}
	best := lo.MaxBy(group, func(a, b models.BidEvaluation) bool { return a.FinalScore > b.FinalScore })
	return &best
}

func averageScore(group []models.BidEvaluation) float64 {
	if len(group) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, e := range group {
		sum = sum.Add(decimal.NewFromFloat(e.FinalScore))
	}
	return sum.Div(decimal.NewFromInt(int64(len(group)))).Round(2).InexactFloat64()
}

// AvailableBids returns the tender's bids that no evaluation references yet.
// The evaluation being edited (editingID, may be empty) does not hide its own bid.
func AvailableBids(bids []models.Bid, evaluations []models.BidEvaluation, tenderID, editingID models.ID) []models.Bid {
	taken := make(map[models.ID]struct{}, len(evaluations))
	for _, e := range evaluations {
		if editingID != "" && e.ID == editingID {
			continue
		}
		taken[e.BidID] = struct{}{}
	}
	return lo.Filter(bids, func(b models.Bid, _ int) bool {
		_, used := taken[b.ID]
		return b.TenderID == tenderID && !used
	})
}
