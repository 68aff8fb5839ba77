package models

import "strings"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// AllStatuses lists every status in display order.
var AllStatuses = []TaskStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

var validStatuses = map[TaskStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

func (s TaskStatus) IsValid() bool {
	return validStatuses[s]
}

// Done reports whether the task is in a terminal state. A done task is
// never considered overdue.
func (s TaskStatus) Done() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Label returns a human-readable form, e.g. "in_progress" -> "In Progress".
func (s TaskStatus) Label() string {
	return titleWords(string(s))
}

// TaskCategory tags a task with a fixed area of life. The set is closed;
// records persisted before categories existed load as CategoryOther.
type TaskCategory string

const (
	CategoryWork      TaskCategory = "work"
	CategoryPersonal  TaskCategory = "personal"
	CategoryShopping  TaskCategory = "shopping"
	CategoryHealth    TaskCategory = "health"
	CategoryEducation TaskCategory = "education"
	CategoryFinance   TaskCategory = "finance"
	CategoryTravel    TaskCategory = "travel"
	CategoryHome      TaskCategory = "home"
	CategoryOther     TaskCategory = "other"
)

// AllCategories lists every category in display order.
var AllCategories = []TaskCategory{
	CategoryWork,
	CategoryPersonal,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryFinance,
	CategoryTravel,
	CategoryHome,
	CategoryOther,
}

var validCategories = map[TaskCategory]bool{
	CategoryWork:      true,
	CategoryPersonal:  true,
	CategoryShopping:  true,
	CategoryHealth:    true,
	CategoryEducation: true,
	CategoryFinance:   true,
	CategoryTravel:    true,
	CategoryHome:      true,
	CategoryOther:     true,
}

func (c TaskCategory) IsValid() bool {
	return validCategories[c]
}

func (c TaskCategory) Label() string {
	return titleWords(string(c))
}

// CategoryColors maps each category to the hex color used by API clients
// and the CLI.
var CategoryColors = map[TaskCategory]string{
	CategoryWork:      "#3B82F6",
	CategoryPersonal:  "#10B981",
	CategoryShopping:  "#F59E0B",
	CategoryHealth:    "#EF4444",
	CategoryEducation: "#8B5CF6",
	CategoryFinance:   "#06B6D4",
	CategoryTravel:    "#F97316",
	CategoryHome:      "#84CC16",
	CategoryOther:     "#6B7280",
}

// Color returns the display color for the category, falling back to the
// "other" gray for anything unrecognized.
func (c TaskCategory) Color() string {
	if color, ok := CategoryColors[c]; ok {
		return color
	}
	return CategoryColors[CategoryOther]
}

// WeatherCondition is the sky state reported by the weather service.
type WeatherCondition string

const (
	ConditionSunny  WeatherCondition = "sunny"
	ConditionCloudy WeatherCondition = "cloudy"
	ConditionRainy  WeatherCondition = "rainy"
	ConditionSnowy  WeatherCondition = "snowy"
	ConditionStormy WeatherCondition = "stormy"
)

// AllConditions lists every weather condition.
var AllConditions = []WeatherCondition{
	ConditionSunny,
	ConditionCloudy,
	ConditionRainy,
	ConditionSnowy,
	ConditionStormy,
}

func (c WeatherCondition) IsValid() bool {
	for _, cond := range AllConditions {
		if c == cond {
			return true
		}
	}
	return false
}

func (c WeatherCondition) Label() string {
	return titleWords(string(c))
}

func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
