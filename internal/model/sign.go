// Package model defines domain entities for the application.
package model

// Element is one of the four classical zodiac elements.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// ZodiacSign is static reference data for one of the twelve signs.
// Instances are never mutated at runtime.
type ZodiacSign struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	HindiName         string  `json:"hindi_name"`
	Symbol            string  `json:"symbol"`
	DateRange         string  `json:"date_range"`
	Element           Element `json:"element"`
	ElementHindi      string  `json:"element_hindi"`
	Color             string  `json:"color"`
	RulingPlanet      string  `json:"ruling_planet"`
	RulingPlanetHindi string  `json:"ruling_planet_hindi"`
	PlanetSymbol      string  `json:"planet_symbol"`
}

// Signs holds the twelve zodiac signs in calendar order starting at Aries.
var Signs = []ZodiacSign{
	{ID: "aries", Name: "Aries", HindiName: "मेष", Symbol: "♈", DateRange: "Mar 21 - Apr 19", Element: ElementFire, ElementHindi: "अग्नि", Color: "#FF6B6B", RulingPlanet: "Mars", RulingPlanetHindi: "मंगल", PlanetSymbol: "♂"},
	{ID: "taurus", Name: "Taurus", HindiName: "वृषभ", Symbol: "♉", DateRange: "Apr 20 - May 20", Element: ElementEarth, ElementHindi: "पृथ्वी", Color: "#4ECDC4", RulingPlanet: "Venus", RulingPlanetHindi: "शुक्र", PlanetSymbol: "♀"},
	{ID: "gemini", Name: "Gemini", HindiName: "मिथुन", Symbol: "♊", DateRange: "May 21 - Jun 20", Element: ElementAir, ElementHindi: "वायु", Color: "#FFE66D", RulingPlanet: "Mercury", RulingPlanetHindi: "बुध", PlanetSymbol: "☿"},
	{ID: "cancer", Name: "Cancer", HindiName: "कर्क", Symbol: "♋", DateRange: "Jun 21 - Jul 22", Element: ElementWater, ElementHindi: "जल", Color: "#95E1D3", RulingPlanet: "Moon", RulingPlanetHindi: "चंद्र", PlanetSymbol: "☽"},
	{ID: "leo", Name: "Leo", HindiName: "सिंह", Symbol: "♌", DateRange: "Jul 23 - Aug 22", Element: ElementFire, ElementHindi: "अग्नि", Color: "#F9A826", RulingPlanet: "Sun", RulingPlanetHindi: "सूर्य", PlanetSymbol: "☉"},
	{ID: "virgo", Name: "Virgo", HindiName: "कन्या", Symbol: "♍", DateRange: "Aug 23 - Sep 22", Element: ElementEarth, ElementHindi: "पृथ्वी", Color: "#A8D8EA", RulingPlanet: "Mercury", RulingPlanetHindi: "बुध", PlanetSymbol: "☿"},
	{ID: "libra", Name: "Libra", HindiName: "तुला", Symbol: "♎", DateRange: "Sep 23 - Oct 22", Element: ElementAir, ElementHindi: "वायु", Color: "#FFB6C1", RulingPlanet: "Venus", RulingPlanetHindi: "शुक्र", PlanetSymbol: "♀"},
	{ID: "scorpio", Name: "Scorpio", HindiName: "वृश्चिक", Symbol: "♏", DateRange: "Oct 23 - Nov 21", Element: ElementWater, ElementHindi: "जल", Color: "#9B59B6", RulingPlanet: "Mars", RulingPlanetHindi: "मंगल", PlanetSymbol: "♂"},
	{ID: "sagittarius", Name: "Sagittarius", HindiName: "धनु", Symbol: "♐", DateRange: "Nov 22 - Dec 21", Element: ElementFire, ElementHindi: "अग्नि", Color: "#E74C3C", RulingPlanet: "Jupiter", RulingPlanetHindi: "गुरु", PlanetSymbol: "♃"},
	{ID: "capricorn", Name: "Capricorn", HindiName: "मकर", Symbol: "♑", DateRange: "Dec 22 - Jan 19", Element: ElementEarth, ElementHindi: "पृथ्वी", Color: "#7F8C8D", RulingPlanet: "Saturn", RulingPlanetHindi: "शनि", PlanetSymbol: "♄"},
	{ID: "aquarius", Name: "Aquarius", HindiName: "कुंभ", Symbol: "♒", DateRange: "Jan 20 - Feb 18", Element: ElementAir, ElementHindi: "वायु", Color: "#3498DB", RulingPlanet: "Saturn", RulingPlanetHindi: "शनि", PlanetSymbol: "♄"},
	{ID: "pisces", Name: "Pisces", HindiName: "मीन", Symbol: "♓", DateRange: "Feb 19 - Mar 20", Element: ElementWater, ElementHindi: "जल", Color: "#9B59B6", RulingPlanet: "Jupiter", RulingPlanetHindi: "गुरु", PlanetSymbol: "♃"},
}

// Compatibility lists element-based compatible and avoid sign IDs.
type Compatibility struct {
	Compatible []string
	Avoid      []string
}

// CompatibilityMap maps a sign ID to its compatible/avoid sign IDs.
var CompatibilityMap = map[string]Compatibility{
	"aries":       {Compatible: []string{"leo", "sagittarius", "gemini", "aquarius"}, Avoid: []string{"cancer", "capricorn"}},
	"taurus":      {Compatible: []string{"virgo", "capricorn", "cancer", "pisces"}, Avoid: []string{"leo", "aquarius"}},
	"gemini":      {Compatible: []string{"libra", "aquarius", "aries", "leo"}, Avoid: []string{"virgo", "pisces"}},
	"cancer":      {Compatible: []string{"scorpio", "pisces", "taurus", "virgo"}, Avoid: []string{"aries", "libra"}},
	"leo":         {Compatible: []string{"aries", "sagittarius", "gemini", "libra"}, Avoid: []string{"taurus", "scorpio"}},
	"virgo":       {Compatible: []string{"taurus", "capricorn", "cancer", "scorpio"}, Avoid: []string{"gemini", "sagittarius"}},
	"libra":       {Compatible: []string{"gemini", "aquarius", "leo", "sagittarius"}, Avoid: []string{"cancer", "capricorn"}},
	"scorpio":     {Compatible: []string{"cancer", "pisces", "virgo", "capricorn"}, Avoid: []string{"leo", "aquarius"}},
	"sagittarius": {Compatible: []string{"aries", "leo", "libra", "aquarius"}, Avoid: []string{"virgo", "pisces"}},
	"capricorn":   {Compatible: []string{"taurus", "virgo", "scorpio", "pisces"}, Avoid: []string{"aries", "libra"}},
	"aquarius":    {Compatible: []string{"gemini", "libra", "aries", "sagittarius"}, Avoid: []string{"taurus", "scorpio"}},
	"pisces":      {Compatible: []string{"cancer", "scorpio", "taurus", "capricorn"}, Avoid: []string{"gemini", "sagittarius"}},
}

// SignByID looks up a sign by its identifier.
// Returns nil when the identifier is unknown.
func SignByID(id string) *ZodiacSign {
	for i := range Signs {
		if Signs[i].ID == id {
			return &Signs[i]
		}
	}
	return nil
}

// IsValidSignID reports whether id names one of the twelve signs.
func IsValidSignID(id string) bool {
	return SignByID(id) != nil
}
