package model

// Metric objects are derived, immutable, recomputed on demand and never
// persisted by the engine. Field names follow the dashboard wire format.

// StreakProgress summarises submission regularity.
type StreakProgress struct {
	DaysThisMonth int `json:"days_this_month"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	TotalDays     int `json:"total_days"`
}

// MoodScore is a 0-100 sentiment/mood aggregate with a coarse trend label.
type MoodScore struct {
	OverallScore  int            `json:"overall_score"`
	Trend         string         `json:"trend"` // very_positive | positive | neutral | negative
	PositiveCount int            `json:"positive_count"`
	NegativeCount int            `json:"negative_count"`
	Distribution  map[string]int `json:"distribution,omitempty"` // mood label -> times selected
}

// DailyMoodPoint is one day of the mood chart.
type DailyMoodPoint struct {
	Score int    `json:"score"`
	Trend string `json:"trend"`
}

// SleepScore is the weighted sleep composite with its named sub-scores.
type SleepScore struct {
	Composite        float64 `json:"composite"`
	QualityScore     float64 `json:"quality_score"`
	DurationScore    float64 `json:"duration_score"`
	ConsistencyScore float64 `json:"consistency_score"`
	DaysTracked      int     `json:"days_tracked"`
}

// NutritionScore is the healthy-eating ratio over meal sub-answers.
type NutritionScore struct {
	Score        float64 `json:"score"` // healthy percentage, 0-100
	HealthyCount int     `json:"healthy_count"`
	EasyCount    int     `json:"easy_count"`
	TotalMeals   int     `json:"total_meals"`
}

// ExerciseDay is one day's classified exercise entry.
type ExerciseDay struct {
	Date      string `json:"date"`
	Exercised bool   `json:"exercised"`
	Bucket    string `json:"bucket,omitempty"` // under_30 | over_30
}

// ExerciseSummary is the per-day exercise distribution.
type ExerciseSummary struct {
	Days          []ExerciseDay `json:"days"`
	DaysExercised int           `json:"days_exercised"`
	DaysTracked   int           `json:"days_tracked"`
	Frequency     float64       `json:"frequency"` // % of tracked days with exercise
}

// HydrationSummary is the per-day hydration consistency report.
type HydrationSummary struct {
	Consistency  float64           `json:"consistency"` // % adequate of classified days
	AdequateDays int               `json:"adequate_days"`
	LowDays      int               `json:"low_days"`
	ByDate       map[string]string `json:"by_date,omitempty"` // date -> adequate | low
}

// FrequencyTable holds absolute counts, percentages and a stable top-10.
type FrequencyTable struct {
	AbsoluteCounts map[string]int     `json:"absolute_counts"`
	Percentages    map[string]float64 `json:"percentages"`
	Top            []EntryCount       `json:"top"`
	TotalResponses int                `json:"total_responses"`
}

// EntryCount is one ranked frequency entry.
type EntryCount struct {
	Entry string `json:"entry"`
	Count int    `json:"count"`
}

// TrendPoint is a daily observation count.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WeekPoint is a Monday-anchored weekly rollup.
type WeekPoint struct {
	WeekStart string  `json:"date"` // Monday of the ISO week
	Count     int     `json:"count"`
	AvgPerDay float64 `json:"avg_per_day"`
}

// TrendSeries pairs the daily series with its weekly rollup.
type TrendSeries struct {
	Daily  []TrendPoint `json:"daily"`
	Weekly []WeekPoint  `json:"weekly"`
}

// WeeklySummary reports on the trailing seven days.
type WeeklySummary struct {
	DaysCompleted   int      `json:"days_completed"`
	TopThemes       []string `json:"top_themes"`
	WeeklyTrend     string   `json:"weekly_trend"`
	PositivityScore int      `json:"positivity_score"`
}

// DateRange bounds a set of submission dates.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// AnalyticsSummary heads the dashboard analytics payload.
type AnalyticsSummary struct {
	TotalResponses       int       `json:"total_responses"`
	DateRange            DateRange `json:"date_range"`
	MostFrequentKeywords []string  `json:"most_frequent_keywords"`
}

// DashboardAnalytics is the full per-question + overall breakdown.
type DashboardAnalytics struct {
	Summary     AnalyticsSummary          `json:"summary"`
	PerQuestion map[string]FrequencyTable `json:"per_question"`
	Overall     FrequencyTable            `json:"overall"`
	TimeFilter  string                    `json:"time_filter"`
}

// DomainScores groups the structured-questionnaire composites.
type DomainScores struct {
	Sleep     SleepScore       `json:"sleep"`
	Nutrition NutritionScore   `json:"nutrition"`
	Exercise  ExerciseSummary  `json:"exercise"`
	Hydration HydrationSummary `json:"hydration"`
}

// DashboardSummary is the assembled dashboard payload.
type DashboardSummary struct {
	DailyProgress    StreakProgress `json:"daily_progress"`
	PositivityScore  MoodScore      `json:"positivity_score"`
	WeeklySummary    WeeklySummary  `json:"weekly_summary"`
	TopKeywords      FrequencyTable `json:"top_keywords"`
	Domains          DomainScores   `json:"domains"`
	TotalReflections int            `json:"total_reflections"`
	LastSubmission   string         `json:"last_submission,omitempty"`
}
