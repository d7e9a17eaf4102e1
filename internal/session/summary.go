package session

// Tier is a percentage-score bracket.
type Tier int

const (
	TierEmpty      Tier = iota // No questions were drawn
	TierNoSoup                 // Below 50%
	TierNewman                 // 50% and up
	TierYadaYada               // 60% and up
	TierPrettyGood             // 70% and up
	TierSerenity               // 80% and up
	TierGold                   // 90% and up
	TierPerfect                // Exactly 100%
)

// Summary holds the data displayed on the result screen.
type Summary struct {
	Score      int
	Total      int
	Percentage float64
	Tier       Tier
	Title      string
	Subtitle   string
}

type tierMessage struct {
	title    string
	subtitle string
}

var tierMessages = map[Tier]tierMessage{
	TierEmpty:      {"No Questions Available", "There was nothing to answer in this mode."},
	TierNoSoup:     {"No Soup For You!", "Better luck next time!"},
	TierNewman:     {"Newman!", "You can do better!"},
	TierYadaYada:   {"Yada Yada Yada...", "Not bad at all!"},
	TierPrettyGood: {"That's Gold, Jerry!", "Pretty, pretty good!"},
	TierSerenity:   {"Serenity Now!", "Excellent knowledge!"},
	TierGold:       {"Master of Your Domain!", "You're gold, Jerry! Gold!"},
	TierPerfect:    {"Master of Your Domain!", "Perfect Score!"},
}

// Summarize maps a final score to its performance tier.
func Summarize(score, total int) Summary {
	sum := Summary{Score: score, Total: total}
	if total <= 0 {
		sum.Tier = TierEmpty
	} else {
		sum.Percentage = 100 * float64(score) / float64(total)
		sum.Tier = tierFor(sum.Percentage)
	}
	msg := tierMessages[sum.Tier]
	sum.Title = msg.title
	sum.Subtitle = msg.subtitle
	return sum
}

// tierFor evaluates the thresholds top-down; the first match wins.
func tierFor(pct float64) Tier {
	switch {
	case pct == 100:
		return TierPerfect
	case pct >= 90:
		return TierGold
	case pct >= 80:
		return TierSerenity
	case pct >= 70:
		return TierPrettyGood
	case pct >= 60:
		return TierYadaYada
	case pct >= 50:
		return TierNewman
	default:
		return TierNoSoup
	}
}
