package model

type Festival struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Type string `json:"type"` // public, religious, seasonal, other
}

// Festivals lists the holidays shown alongside the calendar.
var Festivals = []Festival{
	{Date: "2026-01-01", Name: "New Year's Day", Type: "public"},
	{Date: "2026-01-14", Name: "Makar Sankranti / Pongal", Type: "seasonal"},
	{Date: "2026-01-26", Name: "Republic Day", Type: "public"},
	{Date: "2026-02-14", Name: "Valentine's Day", Type: "other"},
	{Date: "2026-02-16", Name: "Maha Shivaratri", Type: "religious"},
	{Date: "2026-03-04", Name: "Holi", Type: "religious"},
	{Date: "2026-03-20", Name: "Eid al-Fitr", Type: "religious"},
	{Date: "2026-03-29", Name: "Ram Navami", Type: "religious"},
	{Date: "2026-04-03", Name: "Good Friday", Type: "religious"},
	{Date: "2026-04-14", Name: "Ambedkar Jayanti", Type: "public"},
	{Date: "2026-05-01", Name: "Labour Day", Type: "public"},
	{Date: "2026-05-27", Name: "Eid al-Adha", Type: "religious"},
	{Date: "2026-08-15", Name: "Independence Day", Type: "public"},
	{Date: "2026-08-28", Name: "Raksha Bandhan", Type: "religious"},
	{Date: "2026-09-05", Name: "Janmashtami", Type: "religious"},
	{Date: "2026-09-17", Name: "Ganesh Chaturthi", Type: "religious"},
	{Date: "2026-10-02", Name: "Gandhi Jayanti", Type: "public"},
	{Date: "2026-10-18", Name: "Maha Saptami (Durga Puja)", Type: "religious"},
	{Date: "2026-10-20", Name: "Dussehra (Vijayadashami)", Type: "religious"},
	{Date: "2026-11-08", Name: "Diwali (Deepavali)", Type: "religious"},
	{Date: "2026-11-26", Name: "Thanksgiving Day (US)", Type: "other"},
	{Date: "2026-12-25", Name: "Christmas", Type: "religious"},
}

// FestivalOn returns the festival on a given date, if any.
func FestivalOn(date string) (Festival, bool) {
	for _, f := range Festivals {
		if f.Date == date {
			return f, true
		}
	}
	return Festival{}, false
}
