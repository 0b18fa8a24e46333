package generator

import (
	"strings"
	"time"

	"github.com/astrodaily/astrodaily/internal/model"
)

// Default display names used when a sign identifier cannot be resolved
// against the compatibility map.
const (
	defaultCompatibleName = "Leo"
	defaultAvoidName      = "Capricorn"
)

// Clock supplies the current time. Injected so generation for "today"
// is testable against fixed dates.
type Clock func() time.Time

// Generator produces the deterministic fallback horoscope for a sign
// and day offset. It holds no mutable state; every call builds a fresh
// seeded sequence from the target date.
type Generator struct {
	now Clock
}

// New creates a Generator using the given clock.
// A nil clock defaults to time.Now.
func New(now Clock) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Generate returns the horoscope for signID at today+dayOffset.
// dayOffset may be negative. Identical inputs on the same calendar day
// always yield identical output.
func (g *Generator) Generate(signID string, dayOffset int) model.HoroscopeData {
	date := g.now().UTC().AddDate(0, 0, dayOffset)
	return g.ForDate(signID, date)
}

// ForDate returns the horoscope for signID on an explicit calendar date.
// The time-of-day component of date is ignored.
func (g *Generator) ForDate(signID string, date time.Time) model.HoroscopeData {
	isoDate := date.UTC().Format("2006-01-02")
	seq := NewSeededSequence(DateSignSeed(isoDate, signID))

	// Table draws. The order below is the wire contract: each position
	// in the stream feeds exactly one table, and readings published on
	// previous days depend on it staying fixed.
	mood := seq.Pick(len(moods))
	luckyTime := seq.Pick(len(luckyTimes))
	colorSet := seq.Pick(len(luckyColorSets))
	love := seq.Pick(len(loveTexts))
	career := seq.Pick(len(careerTexts))
	health := seq.Pick(len(healthTexts))
	money := seq.Pick(len(moneyTexts))
	travel := seq.Pick(len(travelTexts))
	affirmation := seq.Pick(len(affirmations))
	focus := seq.Pick(len(focusAreas))
	nakshatra := seq.Pick(len(nakshatras))
	tithi := seq.Pick(len(tithis))
	dos := seq.Pick(len(dosSets))
	donts := seq.Pick(len(dontsSets))
	auspicious := seq.Pick(len(auspiciousTimes))
	remedy := seq.Pick(len(remedies))
	mantra := seq.Pick(len(mantras))

	// Compatibility draws happen even for unknown signs so the stream
	// position of the raw draws below never shifts.
	compat := model.CompatibilityMap[signID]
	compatIdx := seq.Pick(len(compat.Compatible))
	avoidIdx := seq.Pick(len(compat.Avoid))

	// Raw draws, in the same relative order as the text selections.
	luckyNumber := seq.IntIn(1, 99)
	lovePct := seq.IntIn(60, 40)
	careerPct := seq.IntIn(60, 40)
	healthPct := seq.IntIn(60, 40)
	moneyPct := seq.IntIn(60, 40)
	travelPct := seq.IntIn(60, 40)

	return model.HoroscopeData{
		Mood:             moods[mood],
		MoodEmoji:        moodEmojis[mood],
		LuckyNumber:      luckyNumber,
		LuckyTime:        luckyTimes[luckyTime],
		LuckyColors:      luckyColorSets[colorSet],
		LovePercentage:   lovePct,
		LoveText:         loveTexts[love],
		CareerPercentage: careerPct,
		CareerText:       careerTexts[career],
		HealthPercentage: healthPct,
		HealthText:       healthTexts[health],
		MoneyPercentage:  moneyPct,
		MoneyText:        moneyTexts[money],
		TravelPercentage: travelPct,
		TravelText:       travelTexts[travel],
		GeneralReading:   generalReading(moods[mood], signID),
		DailyAffirmation: affirmations[affirmation],
		CompatibleSign:   resolveSignName(compat.Compatible, compatIdx, defaultCompatibleName),
		AvoidSign:        resolveSignName(compat.Avoid, avoidIdx, defaultAvoidName),
		FocusArea:        focusAreas[focus].Area,
		FocusEmoji:       focusAreas[focus].Emoji,
		Nakshatra:        nakshatras[nakshatra],
		Tithi:            tithis[tithi],
		Dos:              dosSets[dos],
		Donts:            dontsSets[donts],
		AuspiciousTime:   auspiciousTimes[auspicious],
		Remedy:           remedies[remedy],
		Mantra:           mantras[mantra],
	}
}

// generalReading builds the templated general reading from the drawn
// mood and the sign's element.
func generalReading(mood, signID string) string {
	element := "cosmic"
	if sign := model.SignByID(signID); sign != nil {
		element = string(sign.Element)
	}
	return "The celestial alignment today brings " + strings.ToLower(mood) +
		" energy to your " + element + " nature."
}

// resolveSignName maps a drawn index in a compatibility list to a
// display name, falling back when the list is empty or the id unknown.
func resolveSignName(ids []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(ids) {
		return fallback
	}
	if sign := model.SignByID(ids[idx]); sign != nil {
		return sign.Name
	}
	return fallback
}
