package chatbot

import "strings"

// rule maps a set of trigger substrings to a canned answer. Rules are
// evaluated in order, first match wins.
type rule struct {
	Category string
	Keywords []string
	Exact    []string
	Answer   string
}

var fallbackRules = []rule{
	{
		Category: "admissions",
		Keywords: []string{"admission", "apply"},
		Answer:   "To apply for admission, you'll need to complete our online application form, submit your academic transcripts, and pay the application fee. Would you like me to guide you through the process step by step?",
	},
	{
		Category: "fees",
		Keywords: []string{"fee", "cost", "tuition"},
		Answer:   "Tuition fees vary by program. For undergraduate programs, the fee ranges from $5,000 to $8,000 per semester. Graduate programs cost between $7,500 and $12,000 per semester. Financial aid and scholarships are available. Would you like information about a specific program or about financial assistance?",
	},
	{
		Category: "scholarships",
		Keywords: []string{"scholarship", "financial aid"},
		Answer:   "We offer merit-based scholarships, need-based grants, and work-study programs. To apply, you'll need to submit our scholarship application form along with your academic records and a personal statement. Would you like me to send you the scholarship application link?",
	},
	{
		Category: "housing",
		Keywords: []string{"hostel", "accommodation", "dorm"},
		Answer:   "We have on-campus housing available in multiple residence halls. Rooms are typically double occupancy and include basic furniture, internet access, and utilities. Prices range from $3,000 to $5,000 per academic year depending on the building and room type. Would you like to see photos of our accommodation options?",
	},
	{
		Category: "courses",
		Keywords: []string{"course", "program", "major"},
		Answer:   "Our college offers various undergraduate and graduate programs across faculties including Business, Engineering, Arts, Sciences, and Health Sciences. Each program has specific requirements and course structures. Would you like information about a specific field of study?",
	},
	{
		Category: "deadlines",
		Keywords: []string{"deadline", "last date", "when to apply"},
		Answer:   "For the Fall semester, our application deadline is typically May 1st. For the Spring semester, it's October 15th. Early applications are encouraged as some programs have limited seats. What program are you interested in applying to?",
	},
	{
		Category: "campus-life",
		Keywords: []string{"campus life", "student life", "clubs", "activities"},
		Answer:   "Our campus offers a vibrant student life with over 50 student clubs, sports facilities, cultural events, and leadership opportunities. We have an active student union that organizes various events throughout the year. Would you like to know about any specific activities or facilities?",
	},
	{
		Category: "contact",
		Keywords: []string{"contact", "phone", "email", "address"},
		Answer:   "You can contact our admissions office at admissions@campusai.edu or call us at (123) 456-7890. Our campus is located at 123 University Avenue, Academic City, ST 12345. The office hours are Monday to Friday, 8:00 AM to 6:00 PM.",
	},
	{
		Category: "greetings",
		Keywords: []string{"hello", "hi ", "hey", "greetings"},
		Exact:    []string{"hi"},
		Answer:   "Hello! I'm CampusAI, your college assistant. I can help you with information about admissions, courses, campus life, and more. How can I assist you today?",
	},
	{
		Category: "gratitude",
		Keywords: []string{"thank", "thanks", "appreciate"},
		Answer:   "You're welcome! I'm here to help. Is there anything else you'd like to know about our college?",
	},
}

// FallbackResponse runs the keyword-rule responder over a user message.
// The second return value is false when no rule matched, which is distinct
// from a rule that returns an empty answer (none do).
func FallbackResponse(message string) (string, bool) {
	lowered := strings.ToLower(message)
	for _, r := range fallbackRules {
		for _, exact := range r.Exact {
			if lowered == exact {
				return r.Answer, true
			}
		}
		for _, kw := range r.Keywords {
			if strings.Contains(lowered, kw) {
				return r.Answer, true
			}
		}
	}
	return "", false
}
