// Package fixtures holds the canned CRM rows the demo storefront shows
// when it cannot reach the API.  Nothing in the server imports this
// package; it is wired into the client only behind the opt-in
// WithDemoFixtures option, so production reads can never pick it up by
// accident.
package fixtures

import (
	"time"

	"github.com/pamirmotors/pamir/internal/crm"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Leads returns the demo lead inbox.  Callers get a fresh slice each
// time; mutating it does not bleed between renders.
func Leads() []crm.Lead {
	return []crm.Lead{
		{
			ID:        1,
			Name:      "John Smith",
			Company:   "Construction Co.",
			Email:     "john@constructionco.com",
			Phone:     "+992 123 456 789",
			Subject:   "Tractor Inquiry",
			Message:   "Interested in your latest tractor models for a road project.",
			Status:    crm.StatusNewInquiry,
			CreatedAt: day(2025, time.November, 15),
			UpdatedAt: day(2025, time.November, 15),
		},
		{
			ID:        2,
			Name:      "Sarah Johnson",
			Company:   "Farm Equipment Ltd",
			Email:     "sarah@farmequip.com",
			Phone:     "+992 987 654 321",
			Subject:   "Parts Request",
			Message:   "Need a quote for hydraulic filters and track rollers.",
			Status:    crm.StatusQuoting,
			CreatedAt: day(2025, time.November, 17),
			UpdatedAt: day(2025, time.November, 17),
		},
		{
			ID:        3,
			Name:      "Michael Brown",
			Company:   "Industrial Solutions",
			Email:     "michael@indsolutions.com",
			Phone:     "+992 555 123 456",
			Subject:   "Bulldozer Quote",
			Message:   "Requesting pricing for two mid-size bulldozers.",
			Status:    crm.StatusNegotiation,
			CreatedAt: day(2025, time.November, 18),
			UpdatedAt: day(2025, time.November, 18),
		},
	}
}

// Partners returns the demo partner inbox.
func Partners() []crm.Partner {
	return []crm.Partner{
		{
			ID:        1,
			Name:      "Alex Turner",
			Company:   "Heavy Machinery Distributors",
			Email:     "alex@hmd.com",
			Phone:     "+992 111 222 333",
			Message:   "Interested in a regional distribution partnership.",
			Status:    crm.StatusNewInquiry,
			CreatedAt: day(2025, time.November, 16),
			UpdatedAt: day(2025, time.November, 16),
		},
		{
			ID:        2,
			Name:      "Emma Wilson",
			Company:   "Agricultural Services",
			Email:     "emma@agservices.com",
			Phone:     "+992 444 555 666",
			Message:   "Looking to stock spare parts for agricultural machinery.",
			Status:    crm.StatusQuoting,
			CreatedAt: day(2025, time.November, 18),
			UpdatedAt: day(2025, time.November, 18),
		},
	}
}
