package models

import (
	"fmt"
	"strings"
)

// EventFilter restricts reports by recommendation. EventFilterAll disables it.
type EventFilter string

const EventFilterAll EventFilter = "all"

// EventFilters returns the filter values in cycling order
func EventFilters() []EventFilter {
	return []EventFilter{
		EventFilterAll,
		EventFilter(RecommendationSuitable),
		EventFilter(RecommendationCaution),
		EventFilter(RecommendationUnsuitable),
	}
}

// ParseEventFilter validates user input. An empty string means all.
func ParseEventFilter(s string) (EventFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EventFilterAll, nil
	}
	for _, f := range EventFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid event filter %q (want all, suitable, caution or unsuitable)", s)
}

// Next returns the filter after f in cycling order
func (f EventFilter) Next() EventFilter {
	filters := EventFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return EventFilterAll
}

// Prev returns the filter before f in cycling order
func (f EventFilter) Prev() EventFilter {
	filters := EventFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+len(filters)-1)%len(filters)]
		}
	}
	return EventFilterAll
}

// FilterCriteria is the transient search state derived from user input
type FilterCriteria struct {
	SearchTerm  string
	EventFilter EventFilter
}

// Matches reports whether w satisfies both the search term and the event
// filter. The search is a case-insensitive substring match on the area name.
func (c FilterCriteria) Matches(w WeatherRecord) bool {
	if !strings.Contains(strings.ToLower(w.Area), strings.ToLower(c.SearchTerm)) {
		return false
	}
	return c.EventFilter == "" || c.EventFilter == EventFilterAll ||
		string(c.EventFilter) == string(w.EventRecommendation)
}
