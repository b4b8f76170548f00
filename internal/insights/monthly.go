package insights

import (
	"time"

	"github.com/osamarizk/wizo-insights/internal/receipt"
)

// MonthBucket is one fixed calendar-month slot of a chart series. Buckets with
// no receipts still appear, zero-filled, so positions stay aligned for
// charting callers.
type MonthBucket struct {
	Key      string // YYYY-MM
	Label    string
	Receipts int
	Total    int64 // Amount in cents
}

// MonthlyByYear partitions receipts into the twelve calendar months of year,
// labeled Jan through Dec. Receipts outside the year are ignored.
func MonthlyByYear(receipts []*receipt.Receipt, year int) []MonthBucket {
	buckets := make([]MonthBucket, 0, 12)
	index := make(map[string]int, 12)

	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		index[monthKey(start)] = len(buckets)

		buckets = append(buckets, MonthBucket{
			Key:   monthKey(start),
			Label: start.Format("Jan"),
		})
	}

	fillBuckets(buckets, index, receipts)

	return buckets
}

// MonthlyTrailing partitions receipts into the trailing n calendar months
// ending with the month of now, oldest first, labeled like "Jan 06".
func MonthlyTrailing(receipts []*receipt.Receipt, now time.Time, n int) []MonthBucket {
	starts := monthStarts(now, n)

	buckets := make([]MonthBucket, 0, n)
	index := make(map[string]int, n)

	for _, start := range starts {
		index[monthKey(start)] = len(buckets)

		buckets = append(buckets, MonthBucket{
			Key:   monthKey(start),
			Label: start.Format("Jan 06"),
		})
	}

	fillBuckets(buckets, index, receipts)

	return buckets
}

func fillBuckets(buckets []MonthBucket, index map[string]int, receipts []*receipt.Receipt) {
	for _, r := range receipts {
		i, ok := index[monthKey(r.Date)]
		if !ok {
			continue
		}

		buckets[i].Receipts++
		buckets[i].Total += r.Total
	}
}
