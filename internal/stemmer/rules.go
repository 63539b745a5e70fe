package stemmer

// Suffix groups, tried in the listed order. The order within each group
// is significant: the first suffix that matches and survives the RV
// check wins.

func group(suffixes ...string) [][]rune {
	out := make([][]rune, len(suffixes))
	for i, s := range suffixes {
		out[i] = []rune(s)
	}
	return out
}

var (
	// Perfective gerund. Group 1 requires a preceding "а" or "я".
	gerund1 = group("вши", "вшись", "в")
	gerund2 = group("ив", "ивши", "ившись", "ыв", "ывши", "ывшись")

	reflexive = group("ся", "сь")

	adjective = group(
		"ее", "ие", "ые", "ое", "ими", "ыми", "ей", "ий", "ый", "ой",
		"ем", "им", "ым", "ом", "его", "ого", "ему", "ому", "их", "ых",
		"ую", "юю", "ая", "яя", "ою", "ею",
	)

	// Participles are only stripped directly after an adjective ending.
	// Group 1 requires a preceding "а" or "я".
	participle1 = group("ем", "нн", "вш", "ющ", "щ")
	participle2 = group("ивш", "ывш", "ующ")

	// Verb. Group 1 requires a preceding "а" or "я".
	verb1 = group(
		"ла", "на", "ете", "йте", "ли", "й", "л", "ем", "н", "ло", "но",
		"ет", "ют", "ны", "ть", "ешь", "нно",
	)
	verb2 = group(
		"ила", "ыла", "ена", "ейте", "уйте", "ите", "или", "ыли", "ей",
		"уй", "ил", "ыл", "им", "ым", "ен", "ило", "ыло", "ено", "ят",
		"ует", "уют", "ит", "ыт", "ены", "ить", "ыть", "ишь", "ую", "ю",
	)

	noun = group(
		"а", "ев", "ов", "ие", "ье", "е", "иями", "ями", "ами", "еи",
		"ии", "и", "ией", "ей", "ой", "ий", "й", "иям", "ям", "ием",
		"ем", "ам", "ом", "о", "у", "ах", "иях", "ях", "ы", "ь", "ию",
		"ью", "ю", "ия", "ья", "я",
	)

	trailingI    = group("и")
	derivational = group("ост", "ость")
	superlative  = group("ейше", "ейш")
	softSign     = group("ь")

	doubleN = []rune("нн")
)
