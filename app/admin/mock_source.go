package admin

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MockSource serves a fixed metrics snapshot after a simulated network
// delay. It stands in for the reporting backend until one exists.
type MockSource struct {
	data  Metrics
	delay time.Duration
}

func NewMockSource(data Metrics, delay time.Duration) *MockSource {
	return &MockSource{
		data:  data,
		delay: delay,
	}
}

// Fetch waits out the simulated latency, then returns a copy of the
// snapshot stamped with the current time. Cancelling the context cuts
// the wait short.
func (s *MockSource) Fetch(ctx context.Context) (*Metrics, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	data := s.data
	data.LastUpdated = time.Now()
	return &data, nil
}

// DefaultMetrics returns the demo dashboard figures.
func DefaultMetrics() Metrics {
	return Metrics{
		TotalRevenue:    decimal.NewFromInt(1060004),
		OrdersCount:     138,
		AvgOrderValue:   decimal.NewFromFloat(7681.48),
		InventoryStatus: 287,
		TopProducts: []ProductMetrics{
			{ID: "1", Name: "Yamaha YZ450F", UnitsSold: 45, Revenue: decimal.NewFromInt(382455), Category: "Motocross"},
			{ID: "2", Name: "Kawasaki KX250", UnitsSold: 32, Revenue: decimal.NewFromInt(201568), Category: "Motocross"},
			{ID: "3", Name: "Honda CRF250R", UnitsSold: 28, Revenue: decimal.NewFromInt(162372), Category: "Motocross"},
			{ID: "4", Name: "KTM 85 SX", UnitsSold: 52, Revenue: decimal.NewFromInt(181948), Category: "Youth"},
			{ID: "5", Name: "Beta RR 430", UnitsSold: 18, Revenue: decimal.NewFromInt(131382), Category: "Enduro"},
		},
		CategoryDistribution: []CategoryMetrics{
			{Name: "Motocross", Value: 167, Percentage: 55},
			{Name: "Enduro", Value: 67, Percentage: 22},
			{Name: "Youth", Value: 66, Percentage: 23},
		},
		OrderTrends: []OrderMetrics{
			{Date: "Mon", Count: 12, Revenue: decimal.NewFromInt(84528)},
			{Date: "Tue", Count: 19, Revenue: decimal.NewFromInt(134352)},
			{Date: "Wed", Count: 15, Revenue: decimal.NewFromInt(105840)},
			{Date: "Thu", Count: 25, Revenue: decimal.NewFromInt(176400)},
			{Date: "Fri", Count: 22, Revenue: decimal.NewFromInt(155112)},
			{Date: "Sat", Count: 29, Revenue: decimal.NewFromInt(204876)},
			{Date: "Sun", Count: 16, Revenue: decimal.NewFromInt(112896)},
		},
	}
}
