package scoring

import "strings"

// stopwords are words that carry no keyword value: function words plus the
// boilerplate that shows up on nearly every job posting.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "also": {}, "although": {}, "always": {},
	"am": {}, "among": {}, "an": {}, "and": {}, "another": {}, "any": {},
	"are": {}, "around": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "beyond": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "however": {},

	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},

	"just": {},

	"less": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "might": {},
	"more": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"onto": {}, "or": {}, "other": {}, "our": {}, "out": {}, "over": {},
	"own": {},

	"per": {}, "please": {},

	"rather": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},

	// job-posting boilerplate
	"ability": {}, "applicant": {}, "applicants": {}, "apply": {},
	"candidate": {}, "candidates": {}, "career": {}, "careers": {},
	"job": {}, "jobs": {}, "opportunity": {}, "position": {},
	"required": {}, "requirements": {}, "responsibilities": {}, "role": {},
	"skills": {}, "team": {}, "work": {}, "years": {},
}

func isStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
