package analytics

import (
	"math"
	"regexp"
	"strings"
	"time"

	"dailyq/internal/model"
)

// Score conventions. An empty input collection is a distinct degenerate
// case from "responses present but no sentiment signal found": the former
// scores ScoreEmptyInput, the latter ScoreNoSignal. Callers must read 50
// as "no data / neutral default", not as "half positive".
const (
	ScoreEmptyInput = 0
	ScoreNoSignal   = 50
)

var positiveKeywords = []string{
	"happy", "good", "great", "excited", "grateful", "positive", "confident",
	"proud", "joyful", "satisfied", "wonderful", "amazing", "fantastic",
	"perfect", "excellent", "love", "enjoy", "calm", "peaceful", "hopeful",
}

var negativeKeywords = []string{
	"sad", "bad", "worried", "stressed", "tired", "frustrated", "anxious",
	"disappointed", "angry", "confused", "terrible", "awful", "difficult",
	"hard", "struggle", "problem", "hate", "upset", "nervous", "annoyed",
}

// Whole-word matchers, compiled once. Word boundaries keep "happy" from
// matching inside "unhappy".
var (
	positiveMatchers = compileWordMatchers(positiveKeywords)
	negativeMatchers = compileWordMatchers(negativeKeywords)
)

func compileWordMatchers(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return res
}

// moodLexicon maps the structured mood-question labels to a 7-point
// 0-100 scale. Unrecognised labels fall back to the neutral default.
var moodLexicon = map[string]int{
	"excited":   100,
	"happy":     85,
	"content":   70,
	"neutral":   50,
	"tired":     35,
	"sad":       20,
	"depressed": 10,
}

const moodQuestionOrder = 1

// TrendLabel buckets a 0-100 score into the coarse trend categories used
// uniformly across the dashboard.
func TrendLabel(score int) string {
	switch {
	case score >= 70:
		return "very_positive"
	case score >= 55:
		return "positive"
	case score >= 45:
		return "neutral"
	default:
		return "negative"
	}
}

func countSentiment(text string) (positive, negative int) {
	lower := strings.ToLower(text)
	for _, re := range positiveMatchers {
		positive += len(re.FindAllStringIndex(lower, -1))
	}
	for _, re := range negativeMatchers {
		negative += len(re.FindAllStringIndex(lower, -1))
	}
	return positive, negative
}

func ratioScore(positive, negative int) int {
	total := positive + negative
	if total == 0 {
		return ScoreNoSignal
	}
	return int(math.Round(100 * float64(positive) / float64(total)))
}

// PositivityScore analyses the free-text answers of all responses with
// whole-word sentiment matching. No responses at all yields the
// empty-input score; responses without any sentiment words yield the
// neutral no-signal score.
func PositivityScore(responses []model.Response) model.MoodScore {
	if len(responses) == 0 {
		return model.MoodScore{OverallScore: ScoreEmptyInput, Trend: "neutral"}
	}

	positive, negative := 0, 0
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.Text == "" {
				continue
			}
			p, n := countSentiment(a.Text)
			positive += p
			negative += n
		}
	}

	score := ratioScore(positive, negative)
	return model.MoodScore{
		OverallScore:  score,
		Trend:         TrendLabel(score),
		PositiveCount: positive,
		NegativeCount: negative,
	}
}

// StructuredMoodScore scores the mood question's selections through the
// fixed label lexicon. Selections above the neutral default count as
// positive signals, below as negative.
func StructuredMoodScore(responses []model.Response, catalog *model.Catalog) model.MoodScore {
	if len(responses) == 0 {
		return model.MoodScore{OverallScore: ScoreEmptyInput, Trend: "neutral"}
	}

	moodQID, ok := catalog.QuestionID(moodQuestionOrder)
	if !ok {
		return model.MoodScore{OverallScore: ScoreNoSignal, Trend: "neutral"}
	}

	distribution := make(map[string]int)
	total, n := 0, 0
	positive, negative := 0, 0
	for _, r := range responses {
		for _, a := range r.Answers {
			if !a.IsStructured() || a.QuestionID != moodQID {
				continue
			}
			for _, optID := range a.SelectedOptionIDs {
				label := catalog.ResolveOption(optID)
				score := lexiconScore(label)
				distribution[label]++
				total += score
				n++
				switch {
				case score > ScoreNoSignal:
					positive++
				case score < ScoreNoSignal:
					negative++
				}
			}
		}
	}

	if n == 0 {
		return model.MoodScore{OverallScore: ScoreNoSignal, Trend: "neutral"}
	}

	score := int(math.Round(float64(total) / float64(n)))
	return model.MoodScore{
		OverallScore:  score,
		Trend:         TrendLabel(score),
		PositiveCount: positive,
		NegativeCount: negative,
		Distribution:  distribution,
	}
}

func lexiconScore(label string) int {
	if s, ok := moodLexicon[strings.ToLower(strings.TrimSpace(label))]; ok {
		return s
	}
	return ScoreNoSignal
}

// Daily chart window bounds.
const (
	DefaultChartWindow = 7
	MaxChartWindow     = 90
)

// DailyMoodChart buckets responses by calendar date over a trailing
// window and scores each day from that day's selections and text alone.
// Days without a response are omitted, not zero-filled.
func DailyMoodChart(responses []model.Response, catalog *model.Catalog, now time.Time, windowDays int) (map[string]model.DailyMoodPoint, error) {
	if windowDays < DefaultChartWindow {
		windowDays = DefaultChartWindow
	}
	if windowDays > MaxChartWindow {
		windowDays = MaxChartWindow
	}
	cutoff := dateOnly(now).AddDate(0, 0, -(windowDays - 1))

	var moodQID string
	if catalog != nil {
		moodQID, _ = catalog.QuestionID(moodQuestionOrder)
	}

	type dayBucket struct {
		lexTotal, lexN     int
		positive, negative int
	}
	buckets := make(map[string]*dayBucket)
	for _, r := range responses {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		if d.Before(cutoff) || d.After(dateOnly(now)) {
			continue
		}
		b := buckets[r.Date]
		if b == nil {
			b = &dayBucket{}
			buckets[r.Date] = b
		}
		for _, a := range r.Answers {
			if a.IsStructured() {
				if moodQID == "" || a.QuestionID != moodQID {
					continue
				}
				for _, optID := range a.SelectedOptionIDs {
					b.lexTotal += lexiconScore(catalog.ResolveOption(optID))
					b.lexN++
				}
				continue
			}
			if a.Text != "" {
				p, n := countSentiment(a.Text)
				b.positive += p
				b.negative += n
			}
		}
	}

	chart := make(map[string]model.DailyMoodPoint, len(buckets))
	for date, b := range buckets {
		var score int
		if b.lexN > 0 {
			score = int(math.Round(float64(b.lexTotal) / float64(b.lexN)))
		} else {
			score = ratioScore(b.positive, b.negative)
		}
		chart[date] = model.DailyMoodPoint{Score: score, Trend: TrendLabel(score)}
	}
	return chart, nil
}
