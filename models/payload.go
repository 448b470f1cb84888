package models

// Структуры полезной нагрузки отправки. Имена полей повторяют контракт
// бэкенда один в один (включая исторические weigh_name и number_of_seat),
// менять их нельзя.

// SubmissionPayload is the assembled form the wizard submits exactly once.
// Scalar fields become individual multipart parts, WeightClasses and
// SeatZones are JSON-encoded string parts, assets travel as file parts.
type SubmissionPayload struct {
	OrganizerID string `json:"organizer_id"`
	LocationID  string `json:"location_id"`
	EventName   string `json:"event_name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	EventType   string `json:"event_type"`
	Status      string `json:"status"`

	// Присутствует всегда, даже пустым, независимо от event_type.
	WeightClasses []PayloadWeightClass `json:"weight_classes"`
	SeatZones     []PayloadSeatZone    `json:"seat_zones"`
}

type PayloadWeightClass struct {
	Gender        string         `json:"gender"`
	WeighName     string         `json:"weigh_name"`
	MinWeight     float64        `json:"min_weight"`
	MaxWeight     float64        `json:"max_weight"`
	MaxEnrollment int            `json:"max_enrollment"`
	Matches       []PayloadMatch `json:"matches,omitempty"`
}

type PayloadMatch struct {
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	Boxer1ID  string `json:"boxer1_id"`
	Boxer2ID  string `json:"boxer2_id"`
}

type PayloadSeatZone struct {
	ZoneName     string  `json:"zone_name"`
	NumberOfSeat int     `json:"number_of_seat"`
	Price        float64 `json:"price"`
}
