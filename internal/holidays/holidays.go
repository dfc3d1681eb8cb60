// Package holidays looks up the halachic holiday, if any, falling on a
// date record. The table is keyed on Hebrew month and day; a handful of
// weekday corrections handle fasts that may not fall on Shabbat and the
// movable Yom HaAtzma'ut.
package holidays

import "github.com/baruchs/hebdate/internal/calendar"

// Holiday identifies one entry of the holiday table; None marks a regular
// day.
type Holiday int

const (
	None Holiday = iota
	RoshHashanaI
	RoshHashanaII
	TzomGedaliah
	YomKippur
	Sukkot
	HolHamoedSukkot
	HoshanaRaba
	SimchatTorah
	Chanukah
	AsaraBTevet
	TuBShvat
	TaanitEsther
	Purim
	ShushanPurim
	Pesach
	HolHamoedPesach
	YomHaAtzmaut
	LagBOmer
	ErevShavuot
	Shavuot
	TzomTammuz
	TishaBAv
	TuBAv
	YomHaShoah
	YomHaZikaron
	YomYerushalayim
)

// Kind groups holidays by observance class.
type Kind int

const (
	KindNone    Kind = 0
	KindRegular Kind = 1
	KindRegel   Kind = 2
	KindFast    Kind = 3
)

var names = [...]string{
	None:            "",
	RoshHashanaI:    "Rosh Hashana I",
	RoshHashanaII:   "Rosh Hashana II",
	TzomGedaliah:    "Tzom Gedaliah",
	YomKippur:       "Yom Kippur",
	Sukkot:          "Sukkot",
	HolHamoedSukkot: "Hol hamoed Sukkot",
	HoshanaRaba:     "Hoshana raba",
	SimchatTorah:    "Simchat Torah",
	Chanukah:        "Chanukah",
	AsaraBTevet:     "Asara B'Tevet",
	TuBShvat:        "Tu B'Shvat",
	TaanitEsther:    "Ta'anit Esther",
	Purim:           "Purim",
	ShushanPurim:    "Shushan Purim",
	Pesach:          "Pesach",
	HolHamoedPesach: "Hol hamoed Pesach",
	YomHaAtzmaut:    "Yom HaAtzma'ut",
	LagBOmer:        "Lag B'Omer",
	ErevShavuot:     "Erev Shavuot",
	Shavuot:         "Shavuot",
	TzomTammuz:      "Tzom Tammuz",
	TishaBAv:        "Tish'a B'Av",
	TuBAv:           "Tu B'Av",
	YomHaShoah:      "Yom HaShoah",
	YomHaZikaron:    "Yom HaZikaron",
	YomYerushalayim: "Yom Yerushalayim",
}

// String returns the holiday's English name; localized names live in the
// names package.
func (h Holiday) String() string {
	if h < None || int(h) >= len(names) {
		return ""
	}
	return names[h]
}

// Kind classifies the holiday: the three regalim, the fasts, or a regular
// holiday.
func (h Holiday) Kind() Kind {
	switch h {
	case None:
		return KindNone
	case Sukkot, Pesach, Shavuot:
		return KindRegel
	case TzomGedaliah, YomKippur, AsaraBTevet, TaanitEsther, TzomTammuz, TishaBAv:
		return KindFast
	default:
		return KindRegular
	}
}

// table maps Hebrew month (1..14) and day to the nominal holiday before
// weekday corrections. Postponement targets (4 Tishrei, 11 Adar, 26 and
// 28 Nisan, 18 Tammuz, 10 Av, 3-4 Iyar) carry the holiday too and are
// filtered by Find's weekday checks.
var table = [14][30]Holiday{
	0: { // Tishrei
		0: RoshHashanaI, 1: RoshHashanaII, 2: TzomGedaliah, 3: TzomGedaliah,
		9: YomKippur,
		14: Sukkot, 15: HolHamoedSukkot, 16: HolHamoedSukkot, 17: HolHamoedSukkot,
		18: HolHamoedSukkot, 19: HolHamoedSukkot,
		20: HoshanaRaba, 21: SimchatTorah,
	},
	2: { // Kislev
		24: Chanukah, 25: Chanukah, 26: Chanukah, 27: Chanukah, 28: Chanukah, 29: Chanukah,
	},
	3: { // Tevet
		0: Chanukah, 1: Chanukah, 2: Chanukah,
		9: AsaraBTevet,
	},
	4: { // Shvat
		14: TuBShvat,
	},
	5: { // Adar
		10: TaanitEsther, 12: TaanitEsther, 13: Purim, 14: ShushanPurim,
	},
	6: { // Nisan
		14: Pesach, 15: HolHamoedPesach, 16: HolHamoedPesach, 17: HolHamoedPesach,
		18: HolHamoedPesach, 19: HolHamoedPesach, 20: HolHamoedPesach,
		25: YomHaShoah, 26: YomHaShoah, 27: YomHaShoah,
	},
	7: { // Iyar
		2: YomHaAtzmaut, 3: YomHaAtzmaut, 4: YomHaAtzmaut,
		17: LagBOmer,
		27: YomYerushalayim,
	},
	8: { // Sivan
		4: ErevShavuot, 5: Shavuot,
	},
	9: { // Tammuz
		16: TzomTammuz, 17: TzomTammuz,
	},
	10: { // Av
		8: TishaBAv, 9: TishaBAv,
		14: TuBAv,
	},
	13: { // Adar II
		10: TaanitEsther, 12: TaanitEsther, 13: Purim, 14: ShushanPurim,
	},
}

// Find returns the holiday observed on the given date, or None. Fasts
// falling on Shabbat are reported on their postponed day, Ta'anit Esther
// on the preceding Thursday, and Yom HaAtzma'ut on the day Israeli
// practice moves it to.
func Find(rec calendar.DateRecord) Holiday {
	if rec.HebrewMonth < 1 || rec.HebrewMonth > 14 || rec.HebrewDay < 1 || rec.HebrewDay > 30 {
		return None
	}
	h := table[rec.HebrewMonth-1][rec.HebrewDay-1]
	day, dw := rec.HebrewDay, rec.Weekday

	switch h {
	case TzomGedaliah:
		if (day == 3 && dw == 7) || (day == 4 && dw != 1) {
			return None
		}
	case TzomTammuz:
		if (day == 17 && dw == 7) || (day == 18 && dw != 1) {
			return None
		}
	case TishaBAv:
		if (day == 9 && dw == 7) || (day == 10 && dw != 1) {
			return None
		}
	case Chanukah:
		// The third of Tevet is Chanukah's eighth day only when Kislev
		// was short.
		if day == 3 && rec.SizeOfYear%10 != 3 {
			return None
		}
	case TaanitEsther:
		if (day == 13 && dw == 7) || (day == 11 && dw != 5) {
			return None
		}
	case YomHaShoah:
		// 27 Nisan falls on Fri, Sun, Tue or Thu. Observance advances
		// off Friday to Thursday the 26th and off Sunday to Monday the
		// 28th.
		switch day {
		case 26:
			if dw != 5 {
				return None
			}
		case 27:
			if dw == 6 || dw == 1 {
				return None
			}
		case 28:
			if dw != 2 {
				return None
			}
		}
	case YomHaAtzmaut:
		if rec.HebrewYear < 5708 {
			return None
		}
		switch day {
		case 5:
			if dw == 6 || dw == 7 {
				return None
			}
		case 4, 3:
			// Advanced to Thursday when the fifth falls on Friday or
			// Shabbat.
			if dw != 5 {
				return None
			}
		}
	}
	return h
}
