package chatbot

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index (modulo n).
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func newSeededMentalHealth(seed uint64) *MentalHealthResolver {
	return NewMentalHealthResolver(DefaultMentalHealthKnowledgeBase(), rand.New(rand.NewPCG(seed, seed)))
}

func TestDefaultKnowledgeBasesValidate(t *testing.T) {
	require.NoError(t, DefaultMentalHealthKnowledgeBase().Validate())
	require.NoError(t, DefaultLegalKnowledgeBase().Validate())
}

func TestKnowledgeBaseValidateRejectsTopicWithoutKeywords(t *testing.T) {
	kb := MentalHealthKnowledgeBase{
		Topics:  []MentalHealthTopic{{Key: TopicGreeting, Responses: []string{"hi"}}},
		Default: []string{"fallback"},
	}
	assert.Error(t, kb.Validate())

	legal := LegalKnowledgeBase{Topics: []LegalTopic{{Key: TopicRights, Response: "x"}}, DefaultResponse: "d"}
	assert.Error(t, legal.Validate())
}

func TestMentalHealthResolveTopic(t *testing.T) {
	r := newSeededMentalHealth(1)

	tests := []struct {
		name    string
		message string
		want    Topic
	}{
		{"empty", "", TopicDefault},
		{"greeting", "hello", TopicGreeting},
		{"upper case greeting", "HELLO", TopicGreeting},
		{"padded greeting", "  hello  ", TopicGreeting},
		{"grounding", "I feel anxious and overwhelmed", TopicGrounding},
		{"self care", "coping strategies please", TopicSelfCare},
		{"professional", "can I talk to a counselor", TopicProfessionalHelp},
		{"crisis beats greeting", "hi, I want to kill myself", TopicCrisis},
		{"crisis beats grounding", "panic, I am in danger", TopicCrisis},
		{"gibberish", "asdkjasdkj", TopicDefault},
		{"non ascii", "ninahitaji msaada 🙏", TopicGreeting}, // "hi" inside "ninahitaji"
		{"greeting substring", "this", TopicGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveTopic(tt.message))
		})
	}
}

func TestMentalHealthResolveReturnsMemberOfTopic(t *testing.T) {
	kb := DefaultMentalHealthKnowledgeBase()
	r := newSeededMentalHealth(42)

	inputs := []string{"", "hey", "breathing help", "self-care", "need help", "suicide", "asdkjasdkj", strings.Repeat("x", 100000)}
	for _, in := range inputs {
		for i := 0; i < 20; i++ {
			got := r.Resolve(in)
			assert.NotEmpty(t, got)
			assert.Contains(t, kb.Responses(r.ResolveTopic(in)), got, "input %q", in)
		}
	}
}

func TestMentalHealthCrisisPrecedence(t *testing.T) {
	kb := DefaultMentalHealthKnowledgeBase()
	crisis := kb.Responses(TopicCrisis)
	greeting := kb.Responses(TopicGreeting)

	r := newSeededMentalHealth(7)
	for i := 0; i < 50; i++ {
		got := r.Resolve("hi, I want to kill myself")
		assert.Contains(t, crisis, got)
		assert.NotContains(t, greeting, got)
	}
}

func TestMentalHealthUsesInjectedRand(t *testing.T) {
	kb := DefaultMentalHealthKnowledgeBase()
	grounding := kb.Responses(TopicGrounding)

	for i := range grounding {
		r := NewMentalHealthResolver(kb, fixedRand(i))
		assert.Equal(t, grounding[i], r.Resolve("I feel anxious and overwhelmed"))
	}
}

func TestMentalHealthNilRandIsConcurrencySafe(t *testing.T) {
	r := NewMentalHealthResolver(DefaultMentalHealthKnowledgeBase(), nil)
	defaults := DefaultMentalHealthKnowledgeBase().Default

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Contains(t, defaults, r.Resolve("asdkjasdkj"))
			}
		}()
	}
	wg.Wait()
}

func TestLegalResolveTopic(t *testing.T) {
	r := NewLegalResolver(DefaultLegalKnowledgeBase())

	tests := []struct {
		name    string
		message string
		want    Topic
	}{
		{"verbatim p3 question", "how do i file a p3 form", TopicP3Form},
		{"verbatim upper case", "  HOW DO I FILE A P3 FORM  ", TopicP3Form},
		{"phase 2 lawyer", "I need a lawyer", TopicLegalAid},
		{"question word legal", "is there legal help", TopicLegalAid},
		{"declaration order legal before rights", "legal rights", TopicLegalAid},
		{"declaration order report before evidence", "report evidence", TopicReporting},
		// phase 1 matches "what" from the rights question before any court rule is tried
		{"four letter word what hits rights", "what about court hearing dates", TopicRights},
		{"phase 2 trial", "when is the trial", TopicCourtProcess},
		{"phase 2 hearing", "my hearing is soon", TopicCourtProcess},
		{"phase 2 proof", "do i need proof", TopicEvidence},
		{"phase 2 p3", "where is the p3", TopicP3Form},
		{"phase 2 right", "is it my right", TopicRights},
		{"phase 2 attorney", "find an attorney", TopicLegalAid},
		{"phase 1 form word", "which form do i need", TopicP3Form},
		{"gibberish", "asdkjasdkj", TopicDefault},
		{"empty", "", TopicDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveTopic(tt.message))
		})
	}
}

func TestLegalResolveResponses(t *testing.T) {
	kb := DefaultLegalKnowledgeBase()
	r := NewLegalResolver(kb)

	assert.Equal(t, kb.Response(TopicP3Form), r.Resolve("how do i file a p3 form"))
	assert.Equal(t, kb.Response(TopicLegalAid), r.Resolve("I need a lawyer"))
	assert.Equal(t, kb.Response(TopicCourtProcess), r.Resolve("when is the trial"))

	for i := 0; i < 5; i++ {
		assert.Equal(t, kb.DefaultResponse, r.Resolve("asdkjasdkj"))
	}
}

func TestLegalPhaseTwoCompoundRules(t *testing.T) {
	r := NewLegalResolver(DefaultLegalKnowledgeBase())

	// "order" alone must not reach protection_order in phase 2
	assert.Equal(t, TopicDefault, r.ResolveTopic("in no particular ord"))

	// a knowledge base with only court_process exercises phase 2 reporting and
	// protection_order rules without phase-1 interference
	kb := DefaultLegalKnowledgeBase()
	kb.Topics = kb.Topics[6:]
	narrow := NewLegalResolver(kb)
	assert.Equal(t, TopicReporting, narrow.ResolveTopic("report violence"))
	assert.Equal(t, TopicProtectionOrder, narrow.ResolveTopic("protection please, an order"))
	// topic missing from the narrowed base falls back to the default text
	assert.Equal(t, kb.DefaultResponse, narrow.Resolve("report violence"))
}

func TestKnowledgeBaseJSONKeepsOrder(t *testing.T) {
	raw, err := json.Marshal(DefaultLegalKnowledgeBase())
	require.NoError(t, err)

	s := string(raw)
	order := []string{`"p3_form"`, `"legal_aid"`, `"reporting"`, `"rights"`, `"protection_order"`, `"evidence"`, `"court_process"`, `"default"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		require.GreaterOrEqual(t, idx, 0, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "how do i file a p3 form", decoded["p3_form"]["question"])
	_, hasQuestion := decoded["default"]["question"]
	assert.False(t, hasQuestion)

	mh, err := json.Marshal(DefaultMentalHealthKnowledgeBase())
	require.NoError(t, err)
	var pools map[string][]string
	require.NoError(t, json.Unmarshal(mh, &pools))
	assert.Len(t, pools, 6)
	assert.Len(t, pools["self_care"], 4)
}
