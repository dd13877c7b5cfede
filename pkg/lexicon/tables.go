package lexicon

// Single-word imperative verbs.
var actionVerbWords = []string{
	"buy", "call", "schedule", "pay", "submit", "clean", "fix", "email", "send", "book",
	"finish", "complete", "review", "prepare", "write", "get", "order", "return", "cancel",
	"renew", "organize", "organise", "wash", "vacuum", "mop", "water", "feed", "take", "make",
	"visit", "meet", "text", "check", "update", "file", "sign", "bring", "cook", "plan",
	"repair", "replace", "mow", "sweep", "dust", "tidy", "grab", "purchase", "pick", "drop",
	"finalize", "finalise", "draft", "print", "mail", "post", "ring", "phone", "contact",
	"register", "apply", "attend", "collect", "deliver", "install", "charge", "reply",
	"respond", "confirm", "arrange", "research", "read", "study", "practice", "walk", "empty",
	"unload", "load", "fold", "iron", "change", "refill", "pack", "defrost", "paint", "sort",
}

// Multi-word verb phrases.
var actionVerbPhrases = []string{
	"pick up", "drop off", "take out", "sign up", "follow up", "set up", "look into",
	"clean up", "hand in", "turn in", "fill out", "fill in",
}

var requestPhrases = []string{
	"can you", "could you", "would you", "will you", "please", "pls", "plz",
	"remind me", "don't forget", "dont forget", "do not forget", "make sure",
	"need you to", "remember to", "don't let me forget", "dont let me forget", "note to self",
}

var urgentWords = []string{
	"urgent", "urgently", "asap", "immediately", "critical", "emergency", "right away", "right now",
}

var highWords = []string{
	"important", "priority", "crucial", "essential", "high priority", "top priority",
}

// Phrases that mark a task as deliberately not urgent. They are stripped before the
// urgency scan so that "not urgent" or "low priority" never count as urgency words.
var lowUrgencyPhrases = []string{
	"no rush", "no hurry", "when possible", "whenever possible", "when you can",
	"whenever you can", "when you get a chance", "when you have time", "low priority",
	"not urgent", "not important", "eventually", "at some point", "someday", "if you have time",
}

// Whole-message phrases that carry no task.
var genericPhrases = []string{
	"ok", "okay", "k", "kk", "thanks", "thank you", "thanks a lot", "thank you so much", "thx",
	"ty", "hello", "hi", "hey", "yes", "yeah", "yep", "no", "nope", "sure", "cool", "great",
	"nice", "lol", "haha", "bye", "goodbye", "good morning", "good night", "good evening",
	"got it", "sounds good", "see you", "alright", "fine", "np", "no problem", "welcome",
	"you're welcome", "noted", "will do", "on it",
}

// Words that, when they make up an entire message, still make it generic ("ok thanks").
var genericWords = []string{
	"ok", "okay", "k", "kk", "thanks", "thank", "you", "thx", "ty", "hello", "hi", "hey",
	"yes", "yeah", "yep", "no", "nope", "sure", "cool", "great", "nice", "lol", "haha", "bye",
	"goodbye", "good", "morning", "night", "evening", "got", "it", "sounds", "alright", "fine",
	"so", "much", "very", "a", "lot", "np", "noted", "all", "well", "see", "later", "too",
}

// Verbs that, paired with a household noun, describe a chore.
var choreVerbWords = []string{
	"clean", "fix", "organize", "organise", "tidy", "vacuum", "mop", "wash", "sweep", "dust",
	"repair", "mow", "water", "scrub", "empty", "unload", "load", "fold", "iron", "declutter",
	"do", "take out", "clean up", "clear out", "change", "replace", "paint", "unclog",
}

var questionWords = []string{"what", "when", "how", "why", "where", "who"}

var instructionPronouns = []string{"i", "you"}

var categoryTable = map[Category]map[string]Strength{
	CategoryHousehold: {
		"laundry": Strong, "dishes": Strong, "vacuum": Strong, "vacuuming": Strong, "mop": Strong,
		"kitchen": Strong, "bathroom": Strong, "garage": Strong, "lawn": Strong, "trash": Strong,
		"garbage": Strong, "plumber": Strong, "gutters": Strong, "groceries": Strong,
		"dishwasher": Strong, "fridge": Strong, "chores": Strong, "recycling": Strong,
		"yard": Strong, "mow": Strong, "grocery": Strong, "bins": Strong,
		"clean": Weak, "cleaning": Weak, "fix": Weak, "organize": Weak, "tidy": Weak,
		"house": Weak, "home": Weak, "room": Weak, "milk": Weak, "eggs": Weak, "bread": Weak,
		"buy": Weak, "bedroom": Weak, "floor": Weak, "windows": Weak, "sink": Weak,
	},
	CategoryHealth: {
		"doctor": Strong, "dentist": Strong, "dr": Strong, "prescription": Strong,
		"pharmacy": Strong, "medication": Strong, "medicine": Strong, "pills": Strong,
		"vitamins": Strong, "hospital": Strong, "clinic": Strong, "therapist": Strong,
		"physio": Strong, "checkup": Strong, "check up": Strong, "vaccine": Strong,
		"surgery": Strong, "optometrist": Strong, "orthodontist": Strong,
		"dermatologist": Strong, "gym": Strong, "workout": Strong, "vet": Strong,
		"appointment": Weak, "health": Weak, "exercise": Weak, "blood": Weak, "sick": Weak,
		"run": Weak, "pain": Weak,
	},
	CategoryWork: {
		"report": Strong, "meeting": Strong, "client": Strong, "deadline": Strong,
		"presentation": Strong, "boss": Strong, "manager": Strong, "project": Strong,
		"proposal": Strong, "colleague": Strong, "coworker": Strong, "office": Strong,
		"standup": Strong, "sprint": Strong, "slides": Strong, "spreadsheet": Strong,
		"conference": Strong, "interview": Strong,
		"email": Weak, "submit": Weak, "review": Weak, "team": Weak, "work": Weak,
		"schedule": Weak, "document": Weak,
	},
	CategoryFamily: {
		"mom": Strong, "mum": Strong, "dad": Strong, "mother": Strong, "father": Strong,
		"grandma": Strong, "grandpa": Strong, "kids": Strong, "son": Strong,
		"daughter": Strong, "wife": Strong, "husband": Strong, "sister": Strong,
		"brother": Strong, "family": Strong, "parents": Strong, "baby": Strong,
		"nephew": Strong, "niece": Strong, "aunt": Strong, "uncle": Strong,
		"anniversary": Strong,
		"school": Weak, "dinner": Weak, "birthday": Weak,
	},
	CategoryFinance: {
		"bill": Strong, "bills": Strong, "rent": Strong, "mortgage": Strong, "tax": Strong,
		"taxes": Strong, "bank": Strong, "invoice": Strong, "insurance": Strong,
		"loan": Strong, "payment": Strong, "budget": Strong, "credit card": Strong,
		"paycheck": Strong, "refund": Strong, "utilities": Strong,
		"pay": Weak, "money": Weak, "transfer": Weak, "account": Weak, "subscription": Weak,
	},
	CategoryPersonal: {
		"haircut": Strong, "hobby": Strong, "book club": Strong, "vacation": Strong,
		"passport": Strong, "meditation": Strong, "journal": Strong, "friend": Strong,
		"friends": Strong, "party": Strong, "movie": Strong, "date night": Strong,
		"yoga": Strong, "library": Strong,
		"read": Weak, "gift": Weak, "trip": Weak, "travel": Weak, "hike": Weak,
	},
}
