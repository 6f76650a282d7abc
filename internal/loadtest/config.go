package loadtest

import "time"

// Config holds configuration for the match load test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumProfiles int           // Number of synthetic profiles to generate
	Limit       int           // Result limit sent with each match request
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// matchRequest mirrors the POST /match request schema.
type matchRequest struct {
	Profile profile `json:"profile"`
	Limit   int     `json:"limit,omitempty"`
}

// profile is the slice of the user profile schema the generator fills in.
type profile struct {
	Goals              []string `json:"goals,omitempty"`
	DietPreferences    []string `json:"diet_preferences,omitempty"`
	CurrentSupplements []string `json:"current_supplements,omitempty"`
	Medications        []string `json:"medications,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	Age                int      `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	HealthConditions   []string `json:"health_conditions,omitempty"`
	NutrientGaps       []string `json:"nutrient_gaps,omitempty"`
}

// scoredProduct is the slice of the match response the verifier inspects.
type scoredProduct struct {
	Product struct {
		ID string `json:"id"`
	} `json:"product"`
	Result struct {
		TotalScore int `json:"total_score"`
	} `json:"result"`
}

// Stats holds test statistics
type Stats struct {
	ProfilesGenerated  int
	RequestsSubmitted  int
	RequestsSuccessful int
	RequestsFailed     int
	OrderingViolations int
	LimitViolations    int
	ResultsReturned    int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
