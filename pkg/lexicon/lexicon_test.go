package lexicon_test

import (
	"sync"
	"testing"

	"autonomous-task-extraction/pkg/lexicon"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Empty", in: "", want: " "},
		{name: "Lowercases and pads", in: "Buy Milk", want: " buy milk "},
		{name: "Punctuation becomes space", in: "Call mom, now!", want: " call mom now "},
		{name: "Curly apostrophe", in: "Don’t forget", want: " don't forget "},
		{name: "Collapses whitespace", in: "  pick   up\tkids ", want: " pick up kids "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lexicon.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsActionVerb(t *testing.T) {
	lib := lexicon.Default()

	tests := []struct {
		word string
		want bool
	}{
		{"buy", true},
		{"Call", true},
		{"pick up", true},
		{"banana", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := lib.IsActionVerb(tt.word); got != tt.want {
				t.Errorf("IsActionVerb(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestContainsActionVerb(t *testing.T) {
	lib := lexicon.Default()

	if !lib.ContainsActionVerb("remind me to call mom") {
		t.Error("expected action verb in 'remind me to call mom'")
	}
	if lib.ContainsActionVerb("the weather is lovely") {
		t.Error("did not expect action verb in 'the weather is lovely'")
	}
	if !lib.ContainsActionVerb("could you drop off the parcel") {
		t.Error("expected multi-word action verb")
	}
	// "buyer" must not match "buy"
	if lib.ContainsActionVerb("the buyer is late") {
		t.Error("matched inside a longer word")
	}
}

func TestLeadingActionVerb(t *testing.T) {
	lib := lexicon.Default()

	verb, ok := lib.LeadingActionVerb("Pick up the kids")
	if !ok || verb != "pick up" {
		t.Errorf("LeadingActionVerb() = %q, %v, want %q, true", verb, ok, "pick up")
	}

	verb, ok = lib.LeadingActionVerb("Buy milk")
	if !ok || verb != "buy" {
		t.Errorf("LeadingActionVerb() = %q, %v, want %q, true", verb, ok, "buy")
	}

	if _, ok := lib.LeadingActionVerb("Milk is out"); ok {
		t.Error("expected no leading action verb")
	}
}

func TestIsRequestPhrase(t *testing.T) {
	lib := lexicon.Default()

	for _, s := range []string{"Can you buy milk", "please call", "Don’t forget the keys", "remind me to go"} {
		if !lib.IsRequestPhrase(s) {
			t.Errorf("IsRequestPhrase(%q) = false, want true", s)
		}
	}
	if lib.IsRequestPhrase("we went to the shop") {
		t.Error("IsRequestPhrase matched plain statement")
	}
}

func TestUrgencyTier(t *testing.T) {
	lib := lexicon.Default()

	tests := []struct {
		name string
		text string
		want lexicon.Tier
	}{
		{name: "Urgent", text: "Fix the sink ASAP", want: lexicon.TierUrgent},
		{name: "High", text: "This is important", want: lexicon.TierHigh},
		{name: "Urgent beats high", text: "important and urgent", want: lexicon.TierUrgent},
		{name: "None", text: "water the plants", want: lexicon.TierNone},
		{name: "Not urgent is stripped", text: "not urgent, water plants", want: lexicon.TierNone},
		{name: "Low priority is stripped", text: "low priority: sort photos", want: lexicon.TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lib.UrgencyTier(tt.text); got != tt.want {
				t.Errorf("UrgencyTier(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsUrgencyWord(t *testing.T) {
	lib := lexicon.Default()

	if !lib.IsUrgencyWord("ASAP") || !lib.IsUrgencyWord("important") {
		t.Error("expected urgency words")
	}
	if lib.IsUrgencyWord("milk") {
		t.Error("milk is not an urgency word")
	}
}

func TestIsLowUrgency(t *testing.T) {
	lib := lexicon.Default()

	if !lib.IsLowUrgency("No rush, fix the shelf") {
		t.Error("expected low urgency")
	}
	if lib.IsLowUrgency("fix the shelf") {
		t.Error("did not expect low urgency")
	}
}

func TestCategoryKeywords(t *testing.T) {
	lib := lexicon.Default()

	kw := lib.CategoryKeywords(lexicon.CategoryHealth)
	if kw["doctor"] != lexicon.Strong {
		t.Errorf("doctor strength = %v, want Strong", kw["doctor"])
	}
	if kw["appointment"] != lexicon.Weak {
		t.Errorf("appointment strength = %v, want Weak", kw["appointment"])
	}

	// returned map is a copy
	kw["doctor"] = lexicon.Weak
	if lib.CategoryKeywords(lexicon.CategoryHealth)["doctor"] != lexicon.Strong {
		t.Error("CategoryKeywords leaked internal map")
	}

	if got := lib.CategoryKeywords("unknown"); len(got) != 0 {
		t.Errorf("unknown category returned %d keywords", len(got))
	}
}

func TestCategoryScores(t *testing.T) {
	lib := lexicon.Default()

	scores := lib.CategoryScores("Call mom about the doctor appointment")
	if scores[lexicon.CategoryHealth] != 3 {
		t.Errorf("health score = %d, want 3", scores[lexicon.CategoryHealth])
	}
	if scores[lexicon.CategoryFamily] != 2 {
		t.Errorf("family score = %d, want 2", scores[lexicon.CategoryFamily])
	}
}

func TestHasStrongCategoryKeyword(t *testing.T) {
	lib := lexicon.Default()

	if !lib.HasStrongCategoryKeyword("submit the report") {
		t.Error("expected strong keyword 'report'")
	}
	if lib.HasStrongCategoryKeyword("buy milk") {
		t.Error("milk and buy are weak keywords")
	}
}

func TestIsGenericPhrase(t *testing.T) {
	lib := lexicon.Default()

	tests := []struct {
		text string
		want bool
	}{
		{"ok", true},
		{"Thanks!", true},
		{"ok thanks", true},
		{"Thank you so much", true},
		{"ok buy milk", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := lib.IsGenericPhrase(tt.text); got != tt.want {
				t.Errorf("IsGenericPhrase(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestQuestionAndPronoun(t *testing.T) {
	lib := lexicon.Default()

	if !lib.HasQuestionIndicator("what time is it") || !lib.HasQuestionIndicator("dinner?") {
		t.Error("expected question indicator")
	}
	if lib.HasQuestionIndicator("buy milk") {
		t.Error("unexpected question indicator")
	}
	if !lib.HasInstructionPronoun("I need to call") || !lib.HasInstructionPronoun("can you call") {
		t.Error("expected instruction pronoun")
	}
	if lib.HasInstructionPronoun("call mom") {
		t.Error("unexpected instruction pronoun")
	}
}

func TestConcurrentReads(t *testing.T) {
	lib := lexicon.Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lib.UrgencyTier("urgent report")
			_ = lib.CategoryScores("pay the rent")
			_ = lib.IsGenericPhrase("ok")
		}()
	}
	wg.Wait()
}

func TestTierString(t *testing.T) {
	if lexicon.TierUrgent.String() != "urgent" || lexicon.TierHigh.String() != "high" || lexicon.TierNone.String() != "none" {
		t.Error("unexpected Tier.String output")
	}
}

func TestChoreAndKeyword(t *testing.T) {
	lib := lexicon.Default()

	if !lib.ContainsChoreVerb("take out the trash") || !lib.ContainsChoreVerb("Clean the garage") {
		t.Error("expected chore verb")
	}
	if lib.ContainsChoreVerb("call the bank") {
		t.Error("unexpected chore verb")
	}
	if !lib.HasKeyword("clean the garage", lexicon.CategoryHousehold, lexicon.Strong) {
		t.Error("garage is a strong household keyword")
	}
	if lib.HasKeyword("buy milk", lexicon.CategoryHousehold, lexicon.Strong) {
		t.Error("milk is only a weak household keyword")
	}
	if !lib.HasKeyword("buy milk", lexicon.CategoryHousehold, lexicon.Weak) {
		t.Error("milk is a weak household keyword")
	}
}

func TestCatalogCopies(t *testing.T) {
	lib := lexicon.Default()

	phrases := lib.RequestPhrases()
	if len(phrases) == 0 {
		t.Fatal("no request phrases")
	}
	phrases[0] = "mutated"
	if lib.RequestPhrases()[0] == "mutated" {
		t.Error("RequestPhrases leaked internal slice")
	}
	if len(lib.LowUrgencyPhrases()) == 0 {
		t.Error("no low urgency phrases")
	}
}
