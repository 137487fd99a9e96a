package scoring

import (
	"math"
	"net/url"
	"strings"
	"unicode"
)

// CriterionResult captures one criterion's raw signal before weighting.
// Score is always in [0, 1]; Available is false when the sub-scorer fell back
// to a neutral default because it had nothing to analyze.
type CriterionResult struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Available bool    `json:"available"`
	Reason    string  `json:"reason"`
}

// fullOverlapRatio is the reference-token coverage at which the relevance
// criterion saturates at 1.0.
const fullOverlapRatio = 0.5

// stopwords are excluded from relevance tokenization so that filler words do
// not inflate overlap with the audition brief.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "was": true, "this": true, "that": true, "have": true,
	"has": true, "will": true, "can": true, "our": true, "your": true,
	"from": true, "who": true, "all": true, "about": true, "not": true,
}

// positiveWords and negativeWords form the sentiment lexicon. Deliberately
// small: the criterion needs a coarse confidence signal, not a classifier.
var positiveWords = map[string]bool{
	"passionate": true, "excited": true, "love": true, "confident": true,
	"dedicated": true, "experienced": true, "professional": true, "thrilled": true,
	"strong": true, "great": true, "excellent": true, "accomplished": true,
	"award": true, "winning": true, "proud": true, "eager": true,
	"enthusiastic": true, "committed": true, "skilled": true, "trained": true,
}

var negativeWords = map[string]bool{
	"nervous": true, "unsure": true, "never": true, "afraid": true,
	"worried": true, "doubt": true, "weak": true, "inexperienced": true,
	"struggle": true, "struggled": true, "fail": true, "failed": true,
	"unfortunately": true, "hate": true, "cannot": true, "bad": true,
}

// skillWords is the performing-arts skill lexicon scanned by the skills
// criterion. Four or more distinct hits saturate the score.
var skillWords = map[string]bool{
	"acting": true, "singing": true, "singer": true, "vocal": true,
	"vocalist": true, "dance": true, "dancing": true, "dancer": true,
	"ballet": true, "choreography": true, "theatre": true, "theater": true,
	"stage": true, "improvisation": true, "improv": true, "piano": true,
	"guitar": true, "violin": true, "drums": true, "comedy": true,
	"drama": true, "opera": true, "musical": true, "monologue": true,
	"voiceover": true, "modeling": true, "performance": true, "performer": true,
}

const skillSaturation = 4

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// relevanceCriterion measures token overlap between the submission text and
// the audition brief. Coverage of fullOverlapRatio of the brief's distinct
// tokens earns full marks.
func relevanceCriterion(text, reference string) CriterionResult {
	refTokens := tokenize(reference)
	if len(refTokens) == 0 {
		return CriterionResult{Name: "relevance", Score: 0.5, Available: false, Reason: "no audition brief to compare against"}
	}

	refSet := make(map[string]bool, len(refTokens))
	for _, tok := range refTokens {
		refSet[tok] = true
	}

	matched := make(map[string]bool)
	for _, tok := range tokenize(text) {
		if refSet[tok] {
			matched[tok] = true
		}
	}

	ratio := float64(len(matched)) / float64(len(refSet))
	score := math.Min(ratio/fullOverlapRatio, 1.0)

	reason := "little overlap with the audition brief"
	if score >= 0.6 {
		reason = "closely matches the audition brief"
	} else if score > 0 {
		reason = "partial overlap with the audition brief"
	}
	return CriterionResult{Name: "relevance", Score: score, Available: true, Reason: reason}
}

// sentimentCriterion extracts a positivity and confidence signal from the
// submission text. Without any lexicon hits it falls back to neutral 0.5.
func sentimentCriterion(text string) CriterionResult {
	var pos, neg int
	for _, tok := range tokenize(text) {
		if positiveWords[tok] {
			pos++
		}
		if negativeWords[tok] {
			neg++
		}
	}

	if pos+neg == 0 {
		return CriterionResult{Name: "sentiment", Score: 0.5, Available: false, Reason: "no sentiment cues found"}
	}

	balance := float64(pos-neg) / float64(pos+neg)
	score := clamp(0.5+0.5*balance, 0.0, 1.0)

	reason := "mixed tone"
	switch {
	case score >= 0.75:
		reason = "confident, positive tone"
	case score < 0.4:
		reason = "tone reads hesitant or negative"
	}
	return CriterionResult{Name: "sentiment", Score: score, Available: true, Reason: reason}
}

// skillsCriterion counts distinct skill indicators in the submission text.
func skillsCriterion(text string) CriterionResult {
	hits := make(map[string]bool)
	for _, tok := range tokenize(text) {
		if skillWords[tok] {
			hits[tok] = true
		}
	}

	if len(hits) == 0 {
		return CriterionResult{Name: "skills", Score: 0.0, Available: true, Reason: "no skill indicators mentioned"}
	}

	score := math.Min(float64(len(hits))/float64(skillSaturation), 1.0)
	return CriterionResult{Name: "skills", Score: score, Available: true, Reason: "skill indicators found"}
}

// videoCriterion scores the presence and shape of the video reference.
// An absent video is a zero sub-score, never an error.
func videoCriterion(videoURL string) CriterionResult {
	if videoURL == "" {
		return CriterionResult{Name: "video", Score: 0.0, Available: true, Reason: "no video provided"}
	}

	u, err := url.Parse(videoURL)
	if err != nil || u.Host == "" {
		return CriterionResult{Name: "video", Score: 0.3, Available: true, Reason: "video link is not a resolvable URL"}
	}
	switch u.Scheme {
	case "https":
		return CriterionResult{Name: "video", Score: 1.0, Available: true, Reason: "video provided"}
	case "http":
		return CriterionResult{Name: "video", Score: 0.7, Available: true, Reason: "video provided over insecure link"}
	default:
		return CriterionResult{Name: "video", Score: 0.3, Available: true, Reason: "video link is not a resolvable URL"}
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
