// Package sample builds the example trip seeded into an empty store on first run.
package sample

import (
	"fmt"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripID is the fixed id of the seeded example trip.
const TripID = "sample-halong-trip"

type item struct {
	title, start, end, location string
	category                   domain.Category
	cost                       float64
	notes                      string
}

// HaLongTrip returns a three-day Ha Long Bay trip for eight people starting
// the day after now. Prices are in VND.
func HaLongTrip(now time.Time) domain.Trip {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	plan := [][]item{
		{
			{"Depart from Hanoi", "06:00", "06:30", "Hotel pickup, Hanoi", domain.CategoryTransport, 0, "Van collects everyone at the hotel or the meeting point"},
			{"Drive Hanoi to Ha Long", "06:30", "10:00", "Hanoi - Ha Long expressway (153km)", domain.CategoryTransport, 3_800_000, "11-seat limousine van hired one way"},
			{"Board the Ambassador cruise", "11:00", "11:30", "Tuan Chau international harbour", domain.CategoryOther, 0, ""},
			{"Lunch on board", "12:00", "13:30", "Ambassador cruise", domain.CategoryFood, 0, "Seafood buffet, included in the cruise package"},
			{"Sung Sot cave", "14:00", "15:30", "Sung Sot cave, Ha Long Bay", domain.CategoryTickets, 2_000_000, "250k per person"},
			{"Kayaking", "16:00", "17:30", "Vung Vieng fishing village", domain.CategoryTickets, 800_000, "One hour around the village, 100k per person"},
			{"Dinner and BBQ", "19:00", "21:00", "Ambassador cruise", domain.CategoryFood, 0, "Included in the cruise package"},
			{"Overnight on the cruise", "21:00", "", "Ambassador cruise, Lan Ha Bay", domain.CategoryStay, 36_000_000, "4 deluxe cabins, 4.5M per person including meals"},
		},
		{
			{"Morning tai chi", "06:00", "06:45", "Sun deck", domain.CategoryOther, 0, "Sunrise over the bay"},
			{"Breakfast buffet", "07:00", "08:00", "Ambassador cruise", domain.CategoryFood, 0, "Included"},
			{"Ti Top island", "08:30", "10:30", "Ti Top island, Ha Long Bay", domain.CategoryTickets, 0, "400 steps to the viewpoint, included in the route ticket"},
			{"Swim at Ti Top beach", "10:30", "11:30", "Ti Top beach", domain.CategoryOther, 0, ""},
			{"Brunch and check-out", "12:00", "13:00", "Ambassador cruise", domain.CategoryFood, 0, ""},
			{"Tender back to Tuan Chau", "13:00", "14:00", "Tuan Chau harbour", domain.CategoryTransport, 0, "Cruise tender boat"},
			{"Check in at Vinpearl Resort", "14:30", "15:00", "Vinpearl Resort & Spa Ha Long", domain.CategoryStay, 6_000_000, "4 ocean-view rooms, about 1.5M per room"},
			{"Explore Vinpearl", "15:00", "18:00", "Vinpearl Ha Long", domain.CategoryTickets, 0, "Water park and aquarium are free for resort guests"},
			{"Seafood buffet dinner", "19:00", "21:00", "Ga Hai San restaurant, Bai Chay", domain.CategoryFood, 3_360_000, "420k per person"},
		},
		{
			{"Breakfast at the resort", "07:00", "08:30", "Vinpearl Resort", domain.CategoryFood, 0, "Included in the room rate"},
			{"Beach time", "08:30", "10:00", "Vinpearl beach", domain.CategoryOther, 0, ""},
			{"Check out", "10:00", "10:30", "Vinpearl Resort", domain.CategoryOther, 0, ""},
			{"Souvenir shopping", "10:30", "12:00", "Ha Long 1 market", domain.CategoryOther, 1_600_000, "Dried squid and squid cakes, about 200k per person"},
			{"Lunch before heading back", "12:00", "13:00", "Linh Dan restaurant, Bai Chay", domain.CategoryFood, 2_400_000, "About 300k per person"},
			{"Drive Ha Long to Hanoi", "13:30", "17:00", "Ha Long - Hanoi expressway", domain.CategoryTransport, 3_800_000, "11-seat limousine van back to Hanoi"},
			{"Arrive in Hanoi", "17:00", "", "Hanoi", domain.CategoryTransport, 0, "End of the trip"},
		},
	}

	days := make([]domain.Day, len(plan))
	for d, items := range plan {
		dayID := fmt.Sprintf("day-%d", d+1)
		acts := make([]domain.Activity, len(items))
		for i, it := range items {
			cost := it.cost
			acts[i] = domain.Activity{
				ID:           fmt.Sprintf("a%d-%d", d+1, i+1),
				DayID:        dayID,
				Title:        it.title,
				Category:     it.category,
				TimeStart:    it.start,
				TimeEnd:      it.end,
				LocationText: it.location,
				CostEstimate: &cost,
				Notes:        it.notes,
				OrderIndex:   i,
			}
		}
		days[d] = domain.Day{
			ID:         dayID,
			TripID:     TripID,
			Date:       domain.FormatDate(start.AddDate(0, 0, d)),
			OrderIndex: d,
			Activities: acts,
		}
	}

	return domain.Trip{
		ID:             TripID,
		Title:          "Ha Long Bay, 3 days 2 nights",
		StartDate:      days[0].Date,
		EndDate:        days[len(days)-1].Date,
		Timezone:       domain.DefaultTimezone,
		Currency:       "VND",
		NumberOfPeople: 8,
		Days:           days,
		CostSettings:   domain.DefaultCostSettings(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
