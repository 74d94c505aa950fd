package nlp

// synonymGroups collapses near-synonyms into one canonical theme so the
// frequency tables aggregate meaningfully across word choice.
var synonymGroups = map[string][]string{
	"happiness":   {"happy", "joyful", "cheerful", "pleased", "content", "satisfied", "delighted", "elated", "blissful"},
	"sadness":     {"sad", "depressed", "down", "unhappy", "miserable", "gloomy", "melancholy", "sorrowful", "dejected"},
	"stress":      {"stressed", "anxious", "worried", "tense", "overwhelmed", "pressured", "strained", "frazzled"},
	"excitement":  {"excited", "thrilled", "enthusiastic", "eager", "pumped", "energized", "motivated", "inspired"},
	"frustration": {"frustrated", "annoyed", "irritated", "aggravated", "bothered", "upset", "disappointed"},
	"confidence":  {"confident", "assured", "certain", "secure", "bold", "brave", "courageous"},
	"learning":    {"learning", "studying", "understanding", "grasping", "comprehending", "absorbing"},
	"progress":    {"progress", "improvement", "advancement", "development", "growth", "enhancement", "betterment"},
	"money":       {"money", "finances", "financial", "cash", "income", "budget", "savings", "earnings", "revenue"},
	"friendship":  {"friends", "friendship", "relationships", "social", "companionship", "bonding", "connection"},
	"technology":  {"technology", "tech", "digital", "computer", "software", "machine"},
	"education":   {"education", "course", "study", "academic", "school", "university", "college"},
	"health":      {"health", "wellness", "fitness", "physical", "mental", "emotional", "wellbeing", "vitality"},
	"work":        {"work", "job", "career", "employment", "professional", "business", "occupation", "vocation"},
	"family":      {"family", "parents", "siblings", "relatives", "home", "household", "domestic", "personal"},
}

// synonymIndex is the inverted word -> group lookup built at init.
var synonymIndex = map[string]string{}

func init() {
	for group, words := range synonymGroups {
		for _, w := range words {
			synonymIndex[w] = group
		}
	}
}

// collapseSynonym maps a word to its synonym group when one exists,
// otherwise keeps the word.
func collapseSynonym(word string) string {
	if group, ok := synonymIndex[word]; ok {
		return group
	}
	return word
}
