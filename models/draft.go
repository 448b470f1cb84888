package models

import "time"

// EventType определяет, как событие работает с участниками:
// регистрация по весовым категориям или продажа билетов по зонам.
type EventType string

const (
	EventTypeRegistration EventType = "registration"
	EventTypeTicketSales  EventType = "ticket_sales"
)

// DraftStatus представляет статус черновика события.
type DraftStatus string

const (
	DraftStatusPreparing DraftStatus = "preparing"
	DraftStatusSubmitted DraftStatus = "submitted"
)

// WizardStep — номер активного шага мастера (1..4).
type WizardStep int

const (
	StepBasicInfo WizardStep = iota + 1
	StepScheduleDetails
	StepMatches
	StepReview
)

func (s WizardStep) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepScheduleDetails:
		return "schedule_details"
	case StepMatches:
		return "matches"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// EventDraft — агрегат, который мастер собирает до единственной отправки
// на бэкенд. Все вложенные коллекции изменяются только через сервисный слой.
type EventDraft struct {
	ID          string      `json:"id"`
	OrganizerID string      `json:"organizer_id"`
	LocationID  string      `json:"location_id,omitempty"`
	Name        string      `json:"name"`
	Level       string      `json:"level,omitempty"`
	Description string      `json:"description,omitempty"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	EventType   EventType   `json:"event_type"`
	Status      DraftStatus `json:"status"`
	Step        WizardStep  `json:"step"`

	PosterKey    *string `json:"-"`
	PosterURL    *string `json:"poster_url,omitempty"`
	SeatChartKey *string `json:"-"`
	SeatChartURL *string `json:"seat_chart_url,omitempty"`

	WeightClasses []WeightClass `json:"weight_classes"`
	Matches       []Match       `json:"matches"`
	SeatZones     []SeatZone    `json:"seat_zones"`

	// Снимок справочных данных, загружается один раз за сессию мастера.
	Reference ReferenceCache `json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}

// WeightClassByID returns a pointer into the draft's weight class slice,
// or nil when the id is unknown.
func (d *EventDraft) WeightClassByID(id string) *WeightClass {
	for i := range d.WeightClasses {
		if d.WeightClasses[i].ID == id {
			return &d.WeightClasses[i]
		}
	}
	return nil
}

// MatchByID returns a pointer into the draft's match slice, or nil.
func (d *EventDraft) MatchByID(id string) *Match {
	for i := range d.Matches {
		if d.Matches[i].ID == id {
			return &d.Matches[i]
		}
	}
	return nil
}

// SeatZoneByID returns a pointer into the draft's seat zone slice, or nil.
func (d *EventDraft) SeatZoneByID(id string) *SeatZone {
	for i := range d.SeatZones {
		if d.SeatZones[i].ID == id {
			return &d.SeatZones[i]
		}
	}
	return nil
}
