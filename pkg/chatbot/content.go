package chatbot

// DefaultMentalHealthKnowledgeBase returns the built-in mental health support
// content. Topics are listed in evaluation order: crisis phrasing is checked
// before anything else.
func DefaultMentalHealthKnowledgeBase() MentalHealthKnowledgeBase {
	return MentalHealthKnowledgeBase{
		Topics: []MentalHealthTopic{
			{
				Key:      TopicCrisis,
				Keywords: []string{"suicide", "self harm", "hurt myself", "end it", "kill myself", "danger", "emergency"},
				Responses: []string{
					"If you're in immediate danger or having thoughts of self-harm, please contact emergency services (999) or a crisis hotline immediately.",
					"For immediate crisis support, call the National GBV Hotline or emergency services. Your safety is the priority.",
				},
			},
			{
				Key:      TopicGreeting,
				Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Responses: []string{
					"Hello! I'm here to provide mental health support and information. How can I help you today?",
					"Hi there! I'm a mental health support assistant. What would you like to know?",
					"Welcome! I can help with self-care tips, grounding exercises, and guide you to professional help. What do you need?",
				},
			},
			{
				Key:      TopicGrounding,
				Keywords: []string{"grounding", "anxious", "panic", "overwhelmed", "anxiety", "calm", "breathing"},
				Responses: []string{
					"Here's a simple grounding exercise: Name 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. This helps bring you back to the present moment.",
					"Try deep breathing: Inhale for 4 counts, hold for 4 counts, exhale for 4 counts. Repeat 5 times.",
					"Grounding technique: Place your feet flat on the floor. Notice the sensation. Wiggle your toes. Feel your body in the chair. This helps anchor you in the present.",
				},
			},
			{
				Key:      TopicSelfCare,
				Keywords: []string{"self care", "self-care", "cope", "coping", "feel better", "help myself"},
				Responses: []string{
					"Self-care is important: Get enough sleep, eat regular meals, stay hydrated, and take breaks when needed.",
					"Practice self-compassion. Be kind to yourself. You're doing the best you can.",
					"Set boundaries. It's okay to say no. Your wellbeing matters.",
					"Connect with supportive people. You don't have to go through this alone.",
				},
			},
			{
				Key:      TopicProfessionalHelp,
				Keywords: []string{"therapist", "counselor", "professional", "therapy", "need help", "see someone"},
				Responses: []string{
					"If you're experiencing severe distress, thoughts of self-harm, or feel unsafe, please contact a mental health professional immediately. You can find therapists in our directory.",
					"It's important to seek professional help if symptoms persist or interfere with daily life. Check our therapist directory for professionals in your area.",
					"Remember: Seeking help is a sign of strength, not weakness. Professional therapists can provide specialized support.",
				},
			},
		},
		Default: []string{
			"I understand you're going through a difficult time. Would you like information about grounding exercises, self-care tips, or finding a professional therapist?",
			"I'm here to help. You can ask me about self-care, grounding techniques, or how to find professional support.",
		},
	}
}

// DefaultLegalKnowledgeBase returns the built-in legal aid Q&A content in
// declaration order.
func DefaultLegalKnowledgeBase() LegalKnowledgeBase {
	return LegalKnowledgeBase{
		Topics: []LegalTopic{
			{
				Key:      TopicP3Form,
				Question: "how do i file a p3 form",
				Response: "To file a P3 form (Police Form 3 - Medical Examination Report):\n" +
					"1. Report to the nearest police station and file a report\n" +
					"2. Request a P3 form from the police\n" +
					"3. Take the P3 form to a government hospital or approved medical facility\n" +
					"4. A qualified medical officer will examine you and fill out the form\n" +
					"5. Return the completed P3 form to the police station\n" +
					"6. Keep a copy for your records\n\n" +
					"The P3 form is crucial evidence in GBV cases. It documents physical injuries and is admissible in court.",
			},
			{
				Key:      TopicLegalAid,
				Question: "how do i get legal aid",
				Response: "You can get legal aid through several ways:\n" +
					"1. Contact a lawyer from our Legal Aid Directory\n" +
					"2. Reach out to organizations like FIDA (Federation of Women Lawyers)\n" +
					"3. Contact the Legal Aid Board if available in your area\n" +
					"4. Some NGOs provide free legal services for GBV cases\n\n" +
					"Many lawyers offer pro bono (free) services for GBV survivors. Check our directory for lawyers in your county.",
			},
			{
				Key:      TopicReporting,
				Question: "how do i report gbv",
				Response: "To report Gender-Based Violence:\n" +
					"1. Go to the nearest police station\n" +
					"2. File a report with the police\n" +
					"3. Request a P3 form for medical examination\n" +
					"4. You can also submit an anonymous report through EveShield\n" +
					"5. Contact GBV hotlines for immediate support\n\n" +
					"Remember: You have the right to report. The police are required to take your report seriously.",
			},
			{
				Key:      TopicRights,
				Question: "what are my rights",
				Response: "As a GBV survivor, you have the right to:\n" +
					"- Report the incident to police\n" +
					"- Receive medical attention\n" +
					"- Access legal representation\n" +
					"- Protection from further harm\n" +
					"- Privacy and confidentiality\n" +
					"- Support services (counseling, shelter if needed)\n" +
					"- Fair treatment without discrimination\n\n" +
					"No one has the right to harm you. The law protects you.",
			},
			{
				Key:      TopicProtectionOrder,
				Question: "protection order",
				Response: "A Protection Order is a court order that protects you from an abuser:\n" +
					"1. Apply at the nearest court (Magistrate's Court)\n" +
					"2. You can apply in person or through a lawyer\n" +
					"3. The court can issue temporary orders immediately\n" +
					"4. The abuser will be served and must comply\n" +
					"5. Violation of a protection order is a criminal offense\n\n" +
					"A protection order can prohibit the abuser from contacting you, coming near you, or entering your home.",
			},
			{
				Key:      TopicEvidence,
				Question: "evidence",
				Response: "Important evidence to collect:\n" +
					"- Medical reports (P3 form)\n" +
					"- Photos of injuries\n" +
					"- Text messages, emails, or social media messages\n" +
					"- Witness statements\n" +
					"- Police reports\n" +
					"- Any documents related to the incident\n\n" +
					"Keep all evidence safe. Store it in a secure place. This evidence can be crucial in court.",
			},
			{
				Key:      TopicCourtProcess,
				Question: "court process",
				Response: "The court process for GBV cases:\n" +
					"1. Report to police and file charges\n" +
					"2. Investigation by police\n" +
					"3. Case forwarded to prosecution\n" +
					"4. Court hearing dates set\n" +
					"5. You may need to testify as a witness\n" +
					"6. Court makes a decision\n\n" +
					"The process can take time. A lawyer can guide you through each step. You have the right to legal representation.",
			},
		},
		DefaultResponse: "I'm here to help with legal questions about GBV. You can ask me about:\n" +
			"- How to file a P3 form\n" +
			"- Getting legal aid\n" +
			"- Reporting GBV\n" +
			"- Your rights as a survivor\n" +
			"- Protection orders\n" +
			"- Collecting evidence\n" +
			"- The court process\n\n" +
			"Or browse our Legal Aid Directory to find a lawyer in your area.",
	}
}
