package chatbot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Topic identifies a category of canned response content.
type Topic string

// Mental health topics
const (
	TopicGreeting         Topic = "greeting"
	TopicGrounding        Topic = "grounding"
	TopicSelfCare         Topic = "self_care"
	TopicProfessionalHelp Topic = "professional_help"
	TopicCrisis           Topic = "crisis"
	TopicDefault          Topic = "default"
)

// Legal aid topics
const (
	TopicP3Form          Topic = "p3_form"
	TopicLegalAid        Topic = "legal_aid"
	TopicReporting       Topic = "reporting"
	TopicRights          Topic = "rights"
	TopicProtectionOrder Topic = "protection_order"
	TopicEvidence        Topic = "evidence"
	TopicCourtProcess    Topic = "court_process"
)

// MentalHealthTopic binds trigger keywords to a pool of candidate responses.
type MentalHealthTopic struct {
	Key       Topic
	Keywords  []string
	Responses []string
}

// MentalHealthKnowledgeBase holds the topics in evaluation order.
// Default has no triggers and is the fallback pool.
type MentalHealthKnowledgeBase struct {
	Topics  []MentalHealthTopic
	Default []string
}

// Validate checks that every non-default topic can be triggered and answered.
func (kb MentalHealthKnowledgeBase) Validate() error {
	if len(kb.Default) == 0 {
		return fmt.Errorf("mental health knowledge base: default has no responses")
	}
	for _, t := range kb.Topics {
		if t.Key == TopicDefault {
			return fmt.Errorf("mental health knowledge base: default must not be a triggered topic")
		}
		if len(t.Keywords) == 0 {
			return fmt.Errorf("mental health knowledge base: topic %q has no keywords", t.Key)
		}
		if len(t.Responses) == 0 {
			return fmt.Errorf("mental health knowledge base: topic %q has no responses", t.Key)
		}
	}
	return nil
}

// Responses returns the candidate pool for a topic, or nil when unknown.
func (kb MentalHealthKnowledgeBase) Responses(topic Topic) []string {
	if topic == TopicDefault {
		return kb.Default
	}
	for _, t := range kb.Topics {
		if t.Key == topic {
			return t.Responses
		}
	}
	return nil
}

// MarshalJSON renders topic -> responses, keeping declaration order.
func (kb MentalHealthKnowledgeBase) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, t := range kb.Topics {
		if err := writeMember(&buf, string(t.Key), t.Responses); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, string(TopicDefault), kb.Default); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LegalTopic is a canonical question and its single fixed answer.
type LegalTopic struct {
	Key      Topic
	Question string
	Response string
}

// LegalKnowledgeBase holds the non-default topics in declaration order,
// which is also the phase-1 priority order.
type LegalKnowledgeBase struct {
	Topics          []LegalTopic
	DefaultResponse string
}

// Validate checks that every topic is answerable and has a canonical question.
func (kb LegalKnowledgeBase) Validate() error {
	if kb.DefaultResponse == "" {
		return fmt.Errorf("legal knowledge base: default response is empty")
	}
	for _, t := range kb.Topics {
		if t.Key == TopicDefault {
			return fmt.Errorf("legal knowledge base: default must not carry a question")
		}
		if t.Question == "" || t.Response == "" {
			return fmt.Errorf("legal knowledge base: topic %q is incomplete", t.Key)
		}
	}
	return nil
}

// Response returns the answer for a topic, or "" when unknown.
func (kb LegalKnowledgeBase) Response(topic Topic) string {
	if topic == TopicDefault {
		return kb.DefaultResponse
	}
	for _, t := range kb.Topics {
		if t.Key == topic {
			return t.Response
		}
	}
	return ""
}

type legalEntryJSON struct {
	Question string `json:"question,omitempty"`
	Response string `json:"response"`
}

// MarshalJSON renders topic -> {question, response}, keeping declaration order.
func (kb LegalKnowledgeBase) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, t := range kb.Topics {
		if err := writeMember(&buf, string(t.Key), legalEntryJSON{Question: t.Question, Response: t.Response}); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, string(TopicDefault), legalEntryJSON{Response: kb.DefaultResponse}); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value interface{}) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
