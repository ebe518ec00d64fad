package shuffle

// Curated name pools. The combined fruit+animal pool is shuffled once per
// run; overflow groups get a synthesized "<adjective> <pool entry>" name
// with one extra draw for the adjective.
var (
	fruitNames = []string{
		"🍎 Apples",
		"🍌 Bananas",
		"🍒 Cherries",
		"🥝 Kiwis",
		"🍋 Lemons",
		"🥭 Mangoes",
		"🍑 Peaches",
		"🍍 Pineapples",
		"🍓 Strawberries",
		"🍉 Watermelons",
	}

	animalNames = []string{
		"🦡 Badgers",
		"🦫 Beavers",
		"🐬 Dolphins",
		"🦅 Falcons",
		"🦊 Foxes",
		"🦉 Owls",
		"🐼 Pandas",
		"🦝 Raccoons",
		"🐢 Turtles",
		"🐺 Wolves",
	}

	adjectives = []string{
		"Bold",
		"Bright",
		"Clever",
		"Mighty",
		"Nimble",
		"Silent",
		"Swift",
		"Wild",
	}
)

// AssignNames produces n display names, continuing to draw from seq
// exactly where the allocator left off. The first len(pool) names come
// straight from the shuffled combined pool; overflow names are
// synthesized as "<adjective> <pool[i mod len(pool)]>" with one draw per
// overflow name to pick the adjective.
func AssignNames(seq *Sequence, n int) []string {
	pool := make([]string, 0, len(fruitNames)+len(animalNames))
	pool = append(pool, fruitNames...)
	pool = append(pool, animalNames...)
	pool = Shuffle(seq, pool)

	names := make([]string, n)
	for i := range names {
		if i < len(pool) {
			names[i] = pool[i]
			continue
		}
		adj := adjectives[int(seq.Next()*float64(len(adjectives)))]
		names[i] = adj + " " + pool[i%len(pool)]
	}
	return names
}
