package scoring

import "tableread/internal/model"

// CatalogVersion is stamped onto sessions and result records so a
// reviewer knows which question set produced a profile.
const CatalogVersion = "2026.1"

// catalog is the fixed question set. IDs are stable and referenced by
// the weight tables in rules.go; display order is decided per session,
// so the order here carries no meaning.
var catalog = []model.Question{
	{ID: "bluff_thrill", Modality: model.ModalityAgree, Prompt: "Pulling off a big bluff is the best feeling in poker.", ScaleMin: 1, ScaleMax: 5},
	{ID: "raise_first", Modality: model.ModalityAgree, Prompt: "If a hand is worth playing, it is worth raising.", ScaleMin: 1, ScaleMax: 5},
	{ID: "move_up_stakes", Modality: model.ModalityAgree, Prompt: "When the game feels good I take shots at higher stakes.", ScaleMin: 1, ScaleMax: 5},
	{ID: "certainty_first", Modality: model.ModalityAgree, Prompt: "I only commit chips when I know exactly where I stand.", ScaleMin: 1, ScaleMax: 5},
	{ID: "table_image_play", Modality: model.ModalityAgree, Prompt: "Early in a session I make loose plays just to set an image.", ScaleMin: 1, ScaleMax: 5},
	{ID: "blind_defense", Modality: model.ModalityAgree, Prompt: "I defend my big blind even against the tightest raisers.", ScaleMin: 1, ScaleMax: 5},
	{ID: "gut_call", Modality: model.ModalityAgree, Prompt: "When my gut says call, I call, whatever the numbers say.", ScaleMin: 1, ScaleMax: 5},
	{ID: "solver_study", Modality: model.ModalityAgree, Prompt: "I put real hours into solver outputs between sessions.", ScaleMin: 1, ScaleMax: 5},
	{ID: "live_tells", Modality: model.ModalityAgree, Prompt: "A live tell is worth more to me than a range chart.", ScaleMin: 1, ScaleMax: 5},
	{ID: "range_discipline", Modality: model.ModalityAgree, Prompt: "I stick to my preflop ranges no matter how the night is going.", ScaleMin: 1, ScaleMax: 5},
	{ID: "table_feel", Modality: model.ModalityAgree, Prompt: "Ten minutes of watching a table tells me more than a stat sheet.", ScaleMin: 1, ScaleMax: 5},
	{ID: "note_taking", Modality: model.ModalityAgree, Prompt: "I keep written notes on the regulars I face.", ScaleMin: 1, ScaleMax: 5},
	{ID: "bankroll_guard", Modality: model.ModalityAgree, Prompt: "I move down stakes the moment my bankroll dips.", ScaleMin: 1, ScaleMax: 5},
	{ID: "hero_call", Modality: model.ModalityAgree, Prompt: "I would rather pay off a hero call than be shown a bluff.", ScaleMin: 1, ScaleMax: 5},
	{ID: "slow_play", Modality: model.ModalityAgree, Prompt: "With a monster I trap; big bets just scare off the money.", ScaleMin: 1, ScaleMax: 5},
	{ID: "tilt_rebuy", Modality: model.ModalityAgree, Prompt: "After a brutal beat I reload straight away and play on.", ScaleMin: 1, ScaleMax: 5},
	{ID: "final_table_choice", Modality: model.ModalityChoice, Prompt: "Heads-up for the title. Which win do you take?", Options: []string{
		"Win with a safe, small hand",
		"Win with an all-in bluff",
	}},
	{ID: "busted_reaction", Modality: model.ModalityChoice, Prompt: "You bust a tournament an hour in. What now?", Options: []string{
		"Buy back in right away",
		"Rail a friend and read the table",
		"Run the bust-out hand through a solver",
		"Call it a night and protect the roll",
	}},
	{ID: "preferred_opponent", Modality: model.ModalityChoice, Prompt: "Which opponent do you most enjoy tangling with?", Options: []string{
		"The maniac who three-bets blind",
		"The rock you can read like a book",
		"The regular who plays by the chart",
		"Nobody special, I just want soft games",
	}},
	{ID: "prep_ritual", Modality: model.ModalityChoice, Prompt: "The hour before a big session is for...", Options: []string{
		"One last pass over my ranges",
		"Psyching myself up to play fearless",
		"Setting a hard stop-loss for the night",
		"Nothing, I trust the feel once cards are in the air",
	}},
	{ID: "comfort_buyin", Modality: model.ModalitySlider, Prompt: "The table lets you buy in for anything from 25 to 150 big blinds. How deep do you sit down?", ScaleMin: 25, ScaleMax: 150},
	{ID: "math_check", Modality: model.ModalitySlider, Prompt: "Out of 100 tough river decisions, how many times do you stop and work out the exact pot odds?", ScaleMin: 0, ScaleMax: 100},
	{ID: "years_playing", Modality: model.ModalityChoice, Prompt: "How long have you been playing cards seriously?", Options: []string{
		"Under a year",
		"1 to 3 years",
		"3 to 10 years",
		"More than 10 years",
	}},
	{ID: "favorite_format", Modality: model.ModalityChoice, Prompt: "What is your game of choice?", Options: []string{
		"No-limit hold'em cash",
		"Tournaments",
		"Pot-limit Omaha",
		"Mixed games",
	}},
	{ID: "sessions_per_week", Modality: model.ModalityChoice, Prompt: "How many sessions do you play in a typical week?", Options: []string{
		"Fewer than one",
		"1 or 2",
		"3 to 5",
		"6 or more",
	}},
}

// Catalog returns a copy of the full question set in canonical order.
func Catalog() []model.Question {
	out := make([]model.Question, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the question IDs in canonical order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, q := range catalog {
		ids[i] = q.ID
	}
	return ids
}

// Lookup finds a catalog entry by ID.
func Lookup(id string) (model.Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}
