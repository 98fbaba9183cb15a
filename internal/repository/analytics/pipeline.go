package analytics

import (
	"math"
	"sort"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// MinReviews is the sample size below which an item is left out of TopRated.
const MinReviews = 2

// round rounds half to even at the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(v*p) / p
}

type reviewAgg struct {
	itemID      string
	ratingSum   int
	count       int
	recommended int
	hoursSum    float64
	hoursCount  int
}

// rankReviews groups reviews by item and returns the ranked top rows, without item details.
func rankReviews(reviews []domain.Review, limit int) []domain.TopRatedItem {
	byItem := make(map[string]*reviewAgg)
	for _, r := range reviews {
		a, ok := byItem[r.ItemID]
		if !ok {
			a = &reviewAgg{itemID: r.ItemID}
			byItem[r.ItemID] = a
		}
		a.ratingSum += r.Rating
		a.count++
		if r.Recommended {
			a.recommended++
		}
		if r.HoursPlayed != nil {
			a.hoursSum += *r.HoursPlayed
			a.hoursCount++
		}
	}

	type ranked struct {
		row  domain.TopRatedItem
		mean float64
	}
	rows := make([]ranked, 0, len(byItem))
	for _, a := range byItem {
		if a.count < MinReviews {
			continue
		}
		mean := float64(a.ratingSum) / float64(a.count)
		row := domain.TopRatedItem{
			ItemID:        a.itemID,
			AvgRating:     round(mean, 1),
			ReviewCount:   a.count,
			RecommendRate: round(float64(a.recommended)/float64(a.count)*100, 0),
		}
		if a.hoursCount > 0 {
			h := round(a.hoursSum/float64(a.hoursCount), 1)
			row.AvgPlaytime = &h
		}
		rows = append(rows, ranked{row: row, mean: mean})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].mean != rows[j].mean {
			return rows[i].mean > rows[j].mean
		}
		if rows[i].row.ReviewCount != rows[j].row.ReviewCount {
			return rows[i].row.ReviewCount > rows[j].row.ReviewCount
		}
		return rows[i].row.ItemID < rows[j].row.ItemID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]domain.TopRatedItem, len(rows))
	for i, r := range rows {
		out[i] = r.row
	}
	return out
}

// attachItems fills title, price and cover from items found by id.
func attachItems(rows []domain.TopRatedItem, items []domain.Item) {
	byID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for i := range rows {
		it, ok := byID[rows[i].ItemID]
		if !ok {
			continue
		}
		price := it.Price
		rows[i].Title = it.Title
		rows[i].Price = &price
		rows[i].CoverURL = it.CoverURL
	}
}

type revenueAgg struct {
	total float64
	count int
}

// revenueByPublisher joins transactions to items and groups by publisher.
// Transactions whose item is unknown are skipped.
func revenueByPublisher(txs []domain.Transaction, items []domain.Item, publishers []domain.Publisher) []domain.PublisherRevenue {
	publisherOf := make(map[string]string, len(items))
	for _, it := range items {
		publisherOf[it.ID] = it.PublisherID
	}
	names := make(map[string]string, len(publishers))
	for _, p := range publishers {
		names[p.ID] = p.Name
	}

	groups := make(map[string]*revenueAgg)
	for _, tx := range txs {
		pub, ok := publisherOf[tx.ItemID]
		if !ok {
			continue
		}
		g, ok := groups[pub]
		if !ok {
			g = &revenueAgg{}
			groups[pub] = g
		}
		g.total += tx.AmountPaid
		g.count++
	}

	out := make([]domain.PublisherRevenue, 0, len(groups))
	for pub, g := range groups {
		out = append(out, domain.PublisherRevenue{
			PublisherID:   pub,
			PublisherName: names[pub],
			TotalRevenue:  round(g.total, 2),
			TotalSales:    g.count,
			AvgPrice:      round(g.total/float64(g.count), 2),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].PublisherID < out[j].PublisherID
	})
	return out
}

// platformStats explodes item platforms and summarizes prices per platform.
func platformStats(items []domain.Item) []domain.PlatformStat {
	type agg struct {
		count    int
		sum      float64
		min, max float64
	}
	groups := make(map[string]*agg)
	for _, it := range items {
		for _, p := range it.Platforms {
			g, ok := groups[p]
			if !ok {
				groups[p] = &agg{count: 1, sum: it.Price, min: it.Price, max: it.Price}
				continue
			}
			g.count++
			g.sum += it.Price
			g.min = math.Min(g.min, it.Price)
			g.max = math.Max(g.max, it.Price)
		}
	}

	out := make([]domain.PlatformStat, 0, len(groups))
	for p, g := range groups {
		out = append(out, domain.PlatformStat{
			Platform:  p,
			ItemCount: g.count,
			AvgPrice:  round(g.sum/float64(g.count), 2),
			MinPrice:  g.min,
			MaxPrice:  g.max,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemCount != out[j].ItemCount {
			return out[i].ItemCount > out[j].ItemCount
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}

// personSpending summarizes the transactions of personID.
func personSpending(personID string, txs []domain.Transaction) domain.SpendingSummary {
	s := domain.SpendingSummary{PersonID: personID}
	var total float64
	for _, tx := range txs {
		if tx.PersonID != personID {
			continue
		}
		total += tx.AmountPaid
		s.ItemsBought++
		at := tx.CreatedAt
		if s.FirstPurchase == nil || at.Before(*s.FirstPurchase) {
			first := at
			s.FirstPurchase = &first
		}
		if s.LastPurchase == nil || at.After(*s.LastPurchase) {
			last := at
			s.LastPurchase = &last
		}
	}
	if s.ItemsBought == 0 {
		return s
	}
	s.TotalSpent = round(total, 2)
	s.AvgPricePaid = round(total/float64(s.ItemsBought), 2)
	return s
}
