package chatbot

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// Resolver maps free text to exactly one canned response.
type Resolver interface {
	Resolve(message string) string
}

// Rand is the random source used to pick among candidate responses.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level source, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Normalize lower-cases and trims a message. No other normalization is done.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// MentalHealthResolver answers with a random response from the first topic
// whose keywords appear in the message.
type MentalHealthResolver struct {
	kb  MentalHealthKnowledgeBase
	rnd Rand
}

// NewMentalHealthResolver builds a resolver. A nil rnd uses the process-wide source.
func NewMentalHealthResolver(kb MentalHealthKnowledgeBase, rnd Rand) *MentalHealthResolver {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &MentalHealthResolver{kb: kb, rnd: rnd}
}

// KnowledgeBase returns the content this resolver answers from.
func (r *MentalHealthResolver) KnowledgeBase() MentalHealthKnowledgeBase {
	return r.kb
}

// ResolveTopic returns the topic a message falls into.
func (r *MentalHealthResolver) ResolveTopic(message string) Topic {
	msg := Normalize(message)
	for _, t := range r.kb.Topics {
		if containsAny(msg, t.Keywords) {
			return t.Key
		}
	}
	return TopicDefault
}

// Resolve picks a response for the message.
func (r *MentalHealthResolver) Resolve(message string) string {
	return r.Respond(r.ResolveTopic(message))
}

// Respond picks a response from an already resolved topic.
func (r *MentalHealthResolver) Respond(topic Topic) string {
	return r.pick(r.kb.Responses(topic))
}

func (r *MentalHealthResolver) pick(candidates []string) string {
	if len(candidates) == 0 {
		candidates = r.kb.Default
	}
	// only reachable with a knowledge base that fails Validate
	if len(candidates) == 0 {
		return ""
	}
	return candidates[r.rnd.IntN(len(candidates))]
}

// phase-2 rule: every clause must match, a clause matches when any of its
// needles is contained in the message.
type legalRule struct {
	topic   Topic
	clauses [][]string
}

func (lr legalRule) matches(msg string) bool {
	for _, clause := range lr.clauses {
		if !containsAny(msg, clause) {
			return false
		}
	}
	return true
}

var legalFallbackRules = []legalRule{
	{topic: TopicP3Form, clauses: [][]string{{"p3", "medical form", "medical report"}}},
	{topic: TopicLegalAid, clauses: [][]string{{"legal aid", "lawyer", "attorney"}}},
	{topic: TopicReporting, clauses: [][]string{{"report"}, {"gbv", "violence"}}},
	{topic: TopicRights, clauses: [][]string{{"right", "rights"}}},
	{topic: TopicProtectionOrder, clauses: [][]string{{"protection"}, {"order"}}},
	{topic: TopicEvidence, clauses: [][]string{{"evidence", "proof"}}},
	{topic: TopicCourtProcess, clauses: [][]string{{"court", "trial", "hearing"}}},
}

// questionWordMinLen is exclusive: only words longer than this are used as
// phase-1 match tokens.
const questionWordMinLen = 3

type legalMatcher struct {
	topic    Topic
	question string
	words    []string
}

// LegalResolver answers with the fixed response of the first matching topic.
type LegalResolver struct {
	kb       LegalKnowledgeBase
	matchers []legalMatcher
}

// NewLegalResolver builds a resolver and precomputes phase-1 match tokens.
func NewLegalResolver(kb LegalKnowledgeBase) *LegalResolver {
	matchers := make([]legalMatcher, 0, len(kb.Topics))
	for _, t := range kb.Topics {
		m := legalMatcher{topic: t.Key, question: t.Question}
		for _, w := range strings.Fields(t.Question) {
			if utf8.RuneCountInString(w) > questionWordMinLen {
				m.words = append(m.words, w)
			}
		}
		matchers = append(matchers, m)
	}
	return &LegalResolver{kb: kb, matchers: matchers}
}

// KnowledgeBase returns the content this resolver answers from.
func (r *LegalResolver) KnowledgeBase() LegalKnowledgeBase {
	return r.kb
}

// ResolveTopic returns the topic a message falls into.
func (r *LegalResolver) ResolveTopic(message string) Topic {
	msg := Normalize(message)

	for _, m := range r.matchers {
		if strings.Contains(msg, m.question) || containsAny(msg, m.words) {
			return m.topic
		}
	}

	for _, rule := range legalFallbackRules {
		if rule.matches(msg) {
			return rule.topic
		}
	}

	return TopicDefault
}

// Resolve returns the response for the message.
func (r *LegalResolver) Resolve(message string) string {
	return r.Respond(r.ResolveTopic(message))
}

// Respond returns the fixed response of an already resolved topic.
func (r *LegalResolver) Respond(topic Topic) string {
	if resp := r.kb.Response(topic); resp != "" {
		return resp
	}
	return r.kb.DefaultResponse
}
