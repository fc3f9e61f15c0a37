// Package api implements the resource accessors over the httpclient
// pipeline, one service per entity family. Accessors hold no state beyond
// the pipeline: every call is an independent round trip and the returned
// object is the source of truth for that moment.
package api

import (
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

// Services bundles one accessor per resource family.
type Services struct {
	System       ports.SystemService
	Users        ports.UsersService
	Devices      ports.DevicesService
	Wearables    ports.WearablesService
	Bloodwork    ports.BloodworkService
	Measurements ports.MeasurementsService
	Supplements  ports.SupplementsService
	Journal      ports.JournalService
	Goals        ports.GoalsService
	Metrics      ports.MetricsService
	Insights     ports.InsightsService
	Documents    ports.DocumentsService
}

func New(rc *httpclient.Client) *Services {
	return &Services{
		System:       &System{rc: rc},
		Users:        &Users{rc: rc},
		Devices:      &Devices{rc: rc},
		Wearables:    &Wearables{rc: rc},
		Bloodwork:    &Bloodwork{rc: rc},
		Measurements: &Measurements{rc: rc},
		Supplements:  &Supplements{rc: rc},
		Journal:      &Journal{rc: rc},
		Goals:        &Goals{rc: rc},
		Metrics:      &Metrics{rc: rc},
		Insights:     &Insights{rc: rc},
		Documents:    &Documents{rc: rc},
	}
}
