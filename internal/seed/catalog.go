package seed

import "github.com/tazhibayda/interview-service/internal/domain"

// Catalog returns the fixed question bank: ten questions in each of the
// four categories. The seeder loads it once into an empty questions
// collection; there is no API to change it afterwards.
func Catalog() []domain.Question {
	return []domain.Question{
		// technical
		{Text: "What is the difference between let, const, and var in JavaScript?", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"javascript", "programming"}},
		{Text: "Explain the concept of closures in JavaScript.", Category: domain.CategoryTechnical, Difficulty: "hard", Tags: []string{"javascript", "programming"}},
		{Text: "How does the 'this' keyword work in JavaScript?", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"javascript", "programming"}},
		{Text: "What are promises in JavaScript and how do they work?", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"javascript", "programming", "async"}},
		{Text: "Explain the difference between synchronous and asynchronous code.", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"programming", "async"}},
		{Text: "What is the event loop in JavaScript?", Category: domain.CategoryTechnical, Difficulty: "hard", Tags: []string{"javascript", "programming", "async"}},
		{Text: "Describe the difference between == and === in JavaScript.", Category: domain.CategoryTechnical, Difficulty: "easy", Tags: []string{"javascript", "programming"}},
		{Text: "What is the DOM and how do you manipulate it?", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"javascript", "web", "dom"}},
		{Text: "Explain RESTful API architecture.", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"api", "web", "architecture"}},
		{Text: "What is CORS and how does it work?", Category: domain.CategoryTechnical, Difficulty: "medium", Tags: []string{"web", "security"}},

		// behavioral
		{Text: "Tell me about a time when you had to solve a complex problem.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"problem-solving", "general"}},
		{Text: "Describe a situation where you had to work under pressure to meet a deadline.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"time-management", "stress"}},
		{Text: "Give an example of a time when you had to adapt to a significant change at work.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"adaptability", "change-management"}},
		{Text: "Tell me about a time when you had a conflict with a team member and how you resolved it.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"conflict-resolution", "teamwork"}},
		{Text: "Describe a project you're particularly proud of and your contribution to it.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"achievement", "project-management"}},
		{Text: "How do you handle criticism of your work?", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"feedback", "self-improvement"}},
		{Text: "Tell me about a time when you failed at something and what you learned from it.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"failure", "learning"}},
		{Text: "How do you prioritize tasks when you have multiple deadlines?", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"time-management", "prioritization"}},
		{Text: "Describe a situation where you had to learn a new skill quickly.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"learning", "adaptability"}},
		{Text: "Tell me about a time when you went above and beyond what was required.", Category: domain.CategoryBehavioral, Difficulty: "medium", Tags: []string{"initiative", "work-ethic"}},

		// business
		{Text: "How would you approach entering a new market?", Category: domain.CategoryBusiness, Difficulty: "hard", Tags: []string{"strategy", "market-analysis"}},
		{Text: "Describe how you would analyze the performance of a marketing campaign.", Category: domain.CategoryBusiness, Difficulty: "medium", Tags: []string{"marketing", "analytics"}},
		{Text: "How would you handle a situation where a client is unhappy with your service?", Category: domain.CategoryBusiness, Difficulty: "medium", Tags: []string{"client-management", "conflict-resolution"}},
		{Text: "What metrics would you use to measure the success of a product launch?", Category: domain.CategoryBusiness, Difficulty: "medium", Tags: []string{"product-management", "analytics"}},
		{Text: "How would you approach pricing a new product?", Category: domain.CategoryBusiness, Difficulty: "hard", Tags: []string{"pricing", "strategy"}},
		{Text: "Describe your approach to managing a team through a company restructuring.", Category: domain.CategoryBusiness, Difficulty: "hard", Tags: []string{"management", "change-management"}},
		{Text: "How would you handle a situation where you need to cut costs without affecting quality?", Category: domain.CategoryBusiness, Difficulty: "hard", Tags: []string{"cost-management", "efficiency"}},
		{Text: "What strategies would you use to increase customer retention?", Category: domain.CategoryBusiness, Difficulty: "medium", Tags: []string{"customer-retention", "strategy"}},
		{Text: "How would you approach a negotiation with a key supplier?", Category: domain.CategoryBusiness, Difficulty: "medium", Tags: []string{"negotiation", "supplier-management"}},
		{Text: "Describe how you would create a five-year business plan.", Category: domain.CategoryBusiness, Difficulty: "hard", Tags: []string{"strategic-planning", "business-development"}},

		// healthcare
		{Text: "How would you handle a situation where a patient is dissatisfied with their care?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"patient-care", "conflict-resolution"}},
		{Text: "Describe your approach to maintaining patient confidentiality.", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"ethics", "confidentiality"}},
		{Text: "How do you stay updated with the latest medical research and practices?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"professional-development", "research"}},
		{Text: "Describe a situation where you had to make a quick decision in a patient's care.", Category: domain.CategoryHealthcare, Difficulty: "hard", Tags: []string{"decision-making", "critical-thinking"}},
		{Text: "How would you handle a disagreement with a colleague about a patient's treatment plan?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"teamwork", "conflict-resolution"}},
		{Text: "What steps would you take to prevent medication errors?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"patient-safety", "protocols"}},
		{Text: "How would you approach communicating bad news to a patient or their family?", Category: domain.CategoryHealthcare, Difficulty: "hard", Tags: []string{"communication", "empathy"}},
		{Text: "Describe your experience working in a multidisciplinary healthcare team.", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"teamwork", "collaboration"}},
		{Text: "How do you manage your time effectively in a fast-paced healthcare environment?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"time-management", "stress-management"}},
		{Text: "What strategies would you use to promote patient compliance with treatment plans?", Category: domain.CategoryHealthcare, Difficulty: "medium", Tags: []string{"patient-education", "communication"}},
	}
}
