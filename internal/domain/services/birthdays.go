package services

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// birthDateLayout is the only accepted form of data_nascimento.
const birthDateLayout = "2006-01-02"

// BirthdayEntry is one asset's row in a birthday listing.
type BirthdayEntry struct {
	Nome      string
	Sobrenome string
	Date      time.Time
	Age       int
}

// ParseBirthDate parses a data_nascimento value, false when the field
// is absent or malformed. Malformed dates are skipped, never fatal.
func ParseBirthDate(a entities.Asset) (time.Time, bool) {
	raw := a.Text("data_nascimento")
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Age returns the completed age at today for the given birth date.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// BirthdaysInMonth lists assets born in the given month, sorted by day
// ascending and, within a day, oldest first.
func BirthdaysInMonth(assets []entities.Asset, month time.Month, today time.Time) []BirthdayEntry {
	var out []BirthdayEntry
	for _, a := range assets {
		dt, ok := ParseBirthDate(a)
		if !ok || dt.Month() != month {
			continue
		}
		out = append(out, BirthdayEntry{
			Nome:      a.Text("nome"),
			Sobrenome: a.Text("sobrenome"),
			Date:      dt,
			Age:       Age(dt, today),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Day() != out[j].Date.Day() {
			return out[i].Date.Day() < out[j].Date.Day()
		}
		return out[i].Age > out[j].Age
	})
	return out
}

// BirthdayCalendar groups every asset with a valid birth date by month
// and day, oldest first within each day.
func BirthdayCalendar(assets []entities.Asset, today time.Time) map[time.Month]map[int][]BirthdayEntry {
	cal := make(map[time.Month]map[int][]BirthdayEntry)
	for _, a := range assets {
		dt, ok := ParseBirthDate(a)
		if !ok {
			continue
		}
		if cal[dt.Month()] == nil {
			cal[dt.Month()] = make(map[int][]BirthdayEntry)
		}
		cal[dt.Month()][dt.Day()] = append(cal[dt.Month()][dt.Day()], BirthdayEntry{
			Nome:      a.Text("nome"),
			Sobrenome: a.Text("sobrenome"),
			Date:      dt,
			Age:       Age(dt, today),
		})
	}
	for _, days := range cal {
		for _, entries := range days {
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Age > entries[j].Age
			})
		}
	}
	return cal
}

// UpdateAges recomputes the derived idade field in place for every
// asset with a valid birth date and returns how many were touched. The
// caller owns writing the dataset back out; the engine itself never
// persists anything.
func UpdateAges(assets []entities.Asset, today time.Time) int {
	updated := 0
	for _, a := range assets {
		dt, ok := ParseBirthDate(a)
		if !ok {
			continue
		}
		a.Set("idade", intNumber(Age(dt, today)))
		updated++
	}
	return updated
}

// intNumber converts an int to the json.Number form records carry.
func intNumber(n int) json.Number {
	return json.Number(strconv.Itoa(n))
}
