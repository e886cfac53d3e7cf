package dashboard

import (
	"time"

	"decora_festas/internal/domain/entities"
)

// SampleBudgets is the fixed local dataset served when the initial list load
// fails. It is used for reads only, never for writes, and snapshots built
// from it are flagged as degraded.
func SampleBudgets() []entities.Budget {
	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	return []entities.Budget{
		{
			ID:             "sample-1",
			Client:         "Maria Silva",
			Email:          "maria.silva@example.com",
			Phone:          "+5511999990001",
			EventDate:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			EventTime:      "15:00",
			EventLocation:  "Salão Primavera",
			ServiceType:    entities.ServiceBalloonArch,
			Description:    "Birthday arch, pastel colors",
			EstimatedValue: 850,
			ArcSize:        "4m",
			Status:         entities.StatusPending,
			CreatedAt:      base,
			UpdatedAt:      base,
		},
		{
			ID:             "sample-2",
			Client:         "João Pereira",
			Email:          "joao.pereira@example.com",
			Phone:          "+5511999990002",
			EventDate:      time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC),
			EventTime:      "19:30",
			EventLocation:  "Espaço Jardim",
			ServiceType:    entities.ServiceFullDecoration,
			Description:    "Wedding anniversary, gold and white",
			EstimatedValue: 2300,
			Status:         entities.StatusApproved,
			CreatedAt:      base.Add(24 * time.Hour),
			UpdatedAt:      base.Add(24 * time.Hour),
		},
		{
			ID:             "sample-3",
			Client:         "Ana Costa",
			Email:          "ana.costa@example.com",
			Phone:          "+5511999990003",
			EventDate:      time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			EventTime:      "11:00",
			EventLocation:  "Residência",
			ServiceType:    entities.ServicePicnic,
			Description:    "Christmas picnic for twelve guests",
			EstimatedValue: 640,
			Status:         entities.StatusPending,
			CreatedAt:      base.Add(48 * time.Hour),
			UpdatedAt:      base.Add(48 * time.Hour),
		},
	}
}
