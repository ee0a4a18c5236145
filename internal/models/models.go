package models

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// FallbackImageURL replaces missing or broken opportunity images.
const FallbackImageURL = "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800"

// Opportunity describes a single volunteer listing from the catalog.
type Opportunity struct {
	ID               string         `json:"id" yaml:"id"`
	Title            string         `json:"title" yaml:"title"`
	Organization     string         `json:"organization" yaml:"organization"`
	ShortDescription string         `json:"shortDescription" yaml:"short_description"`
	Description      string         `json:"description" yaml:"description"`
	ImageURL         string         `json:"imageUrl" yaml:"image_url"`
	Causes           []Cause        `json:"causes" yaml:"causes"`
	LocationType     LocationType   `json:"locationType" yaml:"location_type"`
	TimeCommitment   TimeCommitment `json:"timeCommitment" yaml:"time_commitment"`
	Availability     []Availability `json:"availability" yaml:"availability"`
	Distance         float64        `json:"distance" yaml:"distance"`
	SpotsAvailable   int            `json:"spotsAvailable" yaml:"spots_available"`
	SpotsTotal       int            `json:"spotsTotal" yaml:"spots_total"`
	Address          string         `json:"address,omitempty" yaml:"address"`
	Date             string         `json:"date,omitempty" yaml:"date"`
	Requirements     []string       `json:"requirements,omitempty" yaml:"requirements"`
	Skills           []string       `json:"skills,omitempty" yaml:"skills"`
	ContactEmail     string         `json:"contactEmail" yaml:"contact_email"`
	ContactPhone     string         `json:"contactPhone" yaml:"contact_phone"`
}

// Image returns the image reference, or FallbackImageURL when the stored one
// is empty or not an absolute http(s) URL.
func (o Opportunity) Image() string {
	if o.ImageURL == "" {
		return FallbackImageURL
	}
	u, err := url.Parse(o.ImageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return FallbackImageURL
	}
	return o.ImageURL
}

// IsRemote reports whether the opportunity bypasses distance filtering.
func (o Opportunity) IsRemote() bool {
	return o.LocationType == LocationRemote
}

// Cause is a category tag from a fixed enumeration.
type Cause string

const (
	CauseEnvironment Cause = "Environment"
	CauseEducation   Cause = "Education"
	CauseAnimals     Cause = "Animals"
	CauseHealth      Cause = "Health"
	CauseFood        Cause = "Food"
	CauseCommunity   Cause = "Community"
)

// Causes lists the enumeration in display order.
var Causes = []Cause{CauseEnvironment, CauseEducation, CauseAnimals, CauseHealth, CauseFood, CauseCommunity}

// LocationType says whether an opportunity happens on site or online.
type LocationType string

const (
	LocationInPerson LocationType = "In-person"
	LocationRemote   LocationType = "Remote"
)

// TimeCommitment is how often a volunteer is expected to show up.
type TimeCommitment string

const (
	TimeOneTime  TimeCommitment = "One-time"
	TimeWeekly   TimeCommitment = "Weekly"
	TimeMonthly  TimeCommitment = "Monthly"
	TimeFlexible TimeCommitment = "Flexible"
)

// TimeCommitments lists the enumeration in display order.
var TimeCommitments = []TimeCommitment{TimeOneTime, TimeWeekly, TimeMonthly, TimeFlexible}

// Availability is when an opportunity takes place.
type Availability string

const (
	AvailabilityWeekdays Availability = "Weekdays"
	AvailabilityWeekends Availability = "Weekends"
	AvailabilityEvenings Availability = "Evenings"
)

// Availabilities lists the enumeration in display order.
var Availabilities = []Availability{AvailabilityWeekdays, AvailabilityWeekends, AvailabilityEvenings}

// LocationFilter is the discover-mode location selector.
type LocationFilter string

const (
	LocationFilterAll      LocationFilter = "all"
	LocationFilterInPerson LocationFilter = LocationFilter(LocationInPerson)
	LocationFilterRemote   LocationFilter = LocationFilter(LocationRemote)
)

// ExperienceLevel is the first questionnaire answer. The empty value means unset.
type ExperienceLevel string

const (
	ExperienceNone ExperienceLevel = "none"
	ExperienceSome ExperienceLevel = "some"
	ExperienceLots ExperienceLevel = "lots"
)

// ExperienceLevels are the accepted experience answers.
var ExperienceLevels = []ExperienceLevel{ExperienceNone, ExperienceSome, ExperienceLots}

// MarshalJSON encodes the unset level as null.
func (e ExperienceLevel) MarshalJSON() ([]byte, error) {
	return marshalOptional(string(e))
}

// UnmarshalJSON accepts null as unset.
func (e *ExperienceLevel) UnmarshalJSON(data []byte) error {
	v, err := unmarshalOptional(data)
	*e = ExperienceLevel(v)
	return err
}

// LocationPreference is the questionnaire location answer. The empty value means unset.
type LocationPreference string

const (
	PreferInPerson LocationPreference = LocationPreference(LocationInPerson)
	PreferRemote   LocationPreference = LocationPreference(LocationRemote)
	PreferEither   LocationPreference = "either"
)

// LocationPreferences are the accepted location answers.
var LocationPreferences = []LocationPreference{PreferInPerson, PreferRemote, PreferEither}

// MarshalJSON encodes the unset preference as null.
func (l LocationPreference) MarshalJSON() ([]byte, error) {
	return marshalOptional(string(l))
}

// UnmarshalJSON accepts null as unset.
func (l *LocationPreference) UnmarshalJSON(data []byte) error {
	v, err := unmarshalOptional(data)
	*l = LocationPreference(v)
	return err
}

// AvailabilityDays are the day labels offered by the questionnaire.
var AvailabilityDays = []string{"Weekday mornings", "Weekday afternoons", "Weekday evenings", "Weekends"}

// ComfortPreferences are the optional comfort labels offered by the questionnaire.
var ComfortPreferences = []string{
	"Outdoors activities",
	"Working with kids",
	"Physical activity",
	"Team projects",
	"Solo work",
	"Office/admin tasks",
	"Creative work",
	"Teaching/mentoring",
}

// StatusKind names one of the per-opportunity status sets.
type StatusKind string

const (
	StatusSaved     StatusKind = "saved"
	StatusMatched   StatusKind = "matched"
	StatusApplied   StatusKind = "applied"
	StatusCompleted StatusKind = "completed"
)

// StatusKinds lists every status set.
var StatusKinds = []StatusKind{StatusSaved, StatusMatched, StatusApplied, StatusCompleted}

// ParseStatusKind validates a raw status set name.
func ParseStatusKind(raw string) (StatusKind, error) {
	for _, k := range StatusKinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown status kind %q", raw)
}

func marshalOptional(v string) ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func unmarshalOptional(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return "", err
	}
	return v, nil
}
