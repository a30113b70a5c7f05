package admin

import (
	"github.com/shopspring/decimal"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
)

// LowStockThreshold marks products that need restocking.
const LowStockThreshold = 5

type Summary struct {
	Products       int            `json:"products"`
	Users          int            `json:"users"`
	Admins         int            `json:"admins"`
	Orders         int            `json:"orders"`
	Revenue        float64        `json:"revenue"`
	AverageOrder   float64        `json:"averageOrder"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	LowStock       []models.ID    `json:"lowStock"`
}

// Summarize computes the dashboard figures. Cancelled orders count towards
// the order total but not towards revenue.
func Summarize(products []models.Product, users []models.User, placed []models.Order) Summary {
	s := Summary{
		Products:       len(products),
		Users:          len(users),
		Orders:         len(placed),
		OrdersByStatus: map[string]int{},
		LowStock:       []models.ID{},
	}
	for _, u := range users {
		if u.IsAdmin() {
			s.Admins++
		}
	}

	revenue := decimal.Zero
	counted := 0
	for _, o := range placed {
		s.OrdersByStatus[o.Status]++
		if !orders.Status(o.Status).Counted() {
			continue
		}
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		counted++
	}
	s.Revenue = revenue.InexactFloat64()
	if counted > 0 {
		s.AverageOrder = revenue.Div(decimal.NewFromInt(int64(counted))).Round(2).InexactFloat64()
	}

	for _, p := range products {
		if p.Stock != nil && *p.Stock < LowStockThreshold {
			s.LowStock = append(s.LowStock, p.ID)
		}
	}
	return s
}
