package response

import (
	"hotel-booking/internal/usecase/queries"
)

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyStatResponse struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type HotelRankResponse struct {
	HotelID   string  `json:"hotelId"`
	HotelName string  `json:"hotelName"`
	Bookings  int64   `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

type SummaryResponse struct {
	Hotels        int64                 `json:"hotels"`
	Rooms         int64                 `json:"rooms"`
	Bookings      int64                 `json:"bookings"`
	Revenue       float64               `json:"revenue"`
	ByStatus      []StatusCountResponse `json:"byStatus"`
	Monthly       []MonthlyStatResponse `json:"monthly"`
	TopByBookings []HotelRankResponse   `json:"topByBookings"`
	TopByRevenue  []HotelRankResponse   `json:"topByRevenue"`
}

func FromSummary(s *queries.Summary) SummaryResponse {
	res := SummaryResponse{
		Hotels:        s.Hotels,
		Rooms:         s.Rooms,
		Bookings:      s.Bookings,
		Revenue:       centsToAmount(s.RevenueCents),
		ByStatus:      make([]StatusCountResponse, len(s.ByStatus)),
		Monthly:       make([]MonthlyStatResponse, len(s.Monthly)),
		TopByBookings: fromRanks(s.TopByBookings),
		TopByRevenue:  fromRanks(s.TopByRevenue),
	}
	for i, c := range s.ByStatus {
		res.ByStatus[i] = StatusCountResponse{Status: c.Status, Count: c.Count}
	}
	for i, m := range s.Monthly {
		res.Monthly[i] = MonthlyStatResponse{
			Month:    m.Month.Format("2006-01"),
			Bookings: m.Bookings,
			Revenue:  centsToAmount(m.RevenueCents),
		}
	}
	return res
}

func fromRanks(ranks []queries.HotelRevenue) []HotelRankResponse {
	res := make([]HotelRankResponse, len(ranks))
	for i, h := range ranks {
		res[i] = HotelRankResponse{
			HotelID:   h.HotelID.String(),
			HotelName: h.HotelName,
			Bookings:  h.Bookings,
			Revenue:   centsToAmount(h.RevenueCents),
		}
	}
	return res
}
