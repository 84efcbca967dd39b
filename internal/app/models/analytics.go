package models

// AnalyticsPoint is a single named value in an aggregate series, the shape
// chart renderers consume.
type AnalyticsPoint struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}
