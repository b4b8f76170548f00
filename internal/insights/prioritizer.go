package insights

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

// InsightKind separates must-see alerts from informational observations.
type InsightKind string

const (
	KindAlert InsightKind = "alert"
	KindInfo  InsightKind = "info"
)

// Insight is a single human-readable statement about the user's finances. It
// is ephemeral: rendered or pushed, never persisted here.
type Insight struct {
	Title string
	Body  string
	Kind  InsightKind
}

// Selector picks one index out of n candidates. The production selector is
// uniformly random; tests inject a fixed one.
type Selector interface {
	Pick(n int) int
}

// RandomSelector is the production Selector.
type RandomSelector struct{}

func (RandomSelector) Pick(n int) int { return rand.Intn(n) }

// FixedSelector always picks the same index (clamped). Intended for tests and
// reproducible runs.
type FixedSelector int

func (f FixedSelector) Pick(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

// InsightInput carries everything the prioritizer may comment on.
type InsightInput struct {
	TotalSpend    int64
	TopCategories []CategorySpend
	Merchants     []MerchantSummary
	Items         []ItemSummary
	Budgets       []BudgetPerformance
	WalletBalance int64
	HasWallet     bool
}

// CategorySpend is a category's display name with its period total.
type CategorySpend struct {
	Name  string
	Total int64 // Amount in cents
}

// PickInsight selects exactly one insight. Any over-budget category takes
// absolute precedence and produces a deterministic alert. Otherwise one
// observation is chosen from the fixed candidate pool via sel. Returns false
// when there is nothing worth saying; callers must treat that as "no insight",
// not force one.
func PickInsight(in InsightInput, sel Selector) (Insight, bool) {
	for _, b := range in.Budgets {
		if b.Status != StatusOver {
			continue
		}

		return Insight{
			Title: "Budget Alert",
			Body: fmt.Sprintf("Alert: you've gone over your budget for %s by %s!",
				b.CategoryName, FormatCents(b.Spent-b.Budgeted)),
			Kind: KindAlert,
		}, true
	}

	candidates := buildCandidates(in)
	if len(candidates) == 0 {
		return Insight{}, false
	}

	return Insight{
		Title: "Financial Insight",
		Body:  candidates[sel.Pick(len(candidates))],
		Kind:  KindInfo,
	}, true
}

// buildCandidates assembles the fixed, ordered pool of observation sentences.
// Order matters: tests and seeded selectors rely on it being stable.
func buildCandidates(in InsightInput) []string {
	var candidates []string

	if in.TotalSpend > 0 {
		candidates = append(candidates,
			fmt.Sprintf("You've spent %s this month.", FormatCents(in.TotalSpend)))
	}

	if len(in.TopCategories) > 0 && in.TopCategories[0].Total > 0 {
		top := in.TopCategories[0]
		candidates = append(candidates,
			fmt.Sprintf("Your top spending category is %s at %s.", top.Name, FormatCents(top.Total)))
	}

	if in.HasWallet {
		candidates = append(candidates,
			fmt.Sprintf("Your wallet balance is %s.", FormatCents(in.WalletBalance)))
	}

	if m, ok := topMerchantByVisits(in.Merchants); ok {
		candidates = append(candidates,
			fmt.Sprintf("You've visited %s %d times this month.", m.Merchant, m.Visits))
	}

	if item, ok := topRepeatedItem(in.Items); ok {
		candidates = append(candidates,
			fmt.Sprintf("You've bought %s %s times recently.", item.Item, item.TimesBought.String()))
	}

	return candidates
}

func topMerchantByVisits(merchants []MerchantSummary) (MerchantSummary, bool) {
	if len(merchants) == 0 {
		return MerchantSummary{}, false
	}

	top := merchants[0]
	for _, m := range merchants[1:] {
		if m.Visits > top.Visits {
			top = m
		}
	}

	return top, true
}

// topRepeatedItem returns the most re-bought item among those bought more than
// once.
func topRepeatedItem(items []ItemSummary) (ItemSummary, bool) {
	one := decimal.NewFromInt(1)

	var top ItemSummary

	found := false

	for _, it := range items {
		if it.TimesBought.LessThanOrEqual(one) {
			continue
		}

		if !found || it.TimesBought.GreaterThan(top.TimesBought) {
			top = it
			found = true
		}
	}

	return top, found
}
