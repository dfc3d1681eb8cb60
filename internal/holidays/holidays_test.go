package holidays

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baruchs/hebdate/internal/calendar"
)

func record(t *testing.T, day, month, year int) calendar.DateRecord {
	t.Helper()
	rec, err := calendar.FromHebrew(day, month, year)
	require.NoError(t, err)
	return rec
}

func TestFind(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		want             Holiday
	}{
		{name: "rosh hashana", day: 1, month: 1, year: 5785, want: RoshHashanaI},
		{name: "yom kippur", day: 10, month: 1, year: 5785, want: YomKippur},
		{name: "sukkot", day: 15, month: 1, year: 5785, want: Sukkot},
		{name: "hoshana raba", day: 21, month: 1, year: 5785, want: HoshanaRaba},
		{name: "first chanukah candle day", day: 25, month: 3, year: 5785, want: Chanukah},
		{name: "tu bishvat", day: 15, month: 5, year: 5785, want: TuBShvat},
		{name: "purim in adar II", day: 14, month: 14, year: 5784, want: Purim},
		{name: "shushan purim in adar II", day: 15, month: 14, year: 5784, want: ShushanPurim},
		{name: "purim in sole adar", day: 14, month: 6, year: 5785, want: Purim},
		{name: "pesach", day: 15, month: 7, year: 5784, want: Pesach},
		{name: "lag baomer", day: 18, month: 8, year: 5785, want: LagBOmer},
		{name: "shavuot", day: 6, month: 9, year: 5785, want: Shavuot},
		{name: "tu bav", day: 15, month: 11, year: 5785, want: TuBAv},
		{name: "ordinary day", day: 7, month: 2, year: 5785, want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(record(t, tt.day, tt.month, tt.year)))
		})
	}
}

// TestFastPostponement: in 5785, 3 Tishrei falls on Shabbat, so Tzom
// Gedaliah is observed on Sunday the 4th.
func TestFastPostponement(t *testing.T) {
	third := record(t, 3, 1, 5785)
	require.Equal(t, 7, third.Weekday)
	assert.Equal(t, None, Find(third))

	fourth := record(t, 4, 1, 5785)
	require.Equal(t, 1, fourth.Weekday)
	assert.Equal(t, TzomGedaliah, Find(fourth))
}

// TestChanukahLength: the third of Tevet closes Chanukah only in years
// whose Kislev has 29 days.
func TestChanukahLength(t *testing.T) {
	// 5781 is a 353-day year: Kislev is short, Chanukah runs to 3 Tevet.
	assert.Equal(t, Chanukah, Find(record(t, 3, 4, 5781)))
	assert.Equal(t, None, Find(record(t, 4, 4, 5781)))

	// 5785 is a 355-day year: Kislev has its 30th, 2 Tevet is the last day.
	assert.Equal(t, Chanukah, Find(record(t, 30, 3, 5785)))
	assert.Equal(t, Chanukah, Find(record(t, 2, 4, 5785)))
	assert.Equal(t, None, Find(record(t, 3, 4, 5785)))
}

// TestYomHaAtzmaut covers the movable observance: advanced to Thursday
// when 5 Iyar falls on Friday or Shabbat, absent before 5708.
func TestYomHaAtzmaut(t *testing.T) {
	// 5785: 5 Iyar is Shabbat; observed Thursday 3 Iyar.
	assert.Equal(t, None, Find(record(t, 5, 8, 5785)))
	assert.Equal(t, YomHaAtzmaut, Find(record(t, 3, 8, 5785)))
	assert.Equal(t, None, Find(record(t, 4, 8, 5785)))

	// 5782: 5 Iyar is Friday; observed Thursday 4 Iyar.
	assert.Equal(t, None, Find(record(t, 5, 8, 5782)))
	assert.Equal(t, YomHaAtzmaut, Find(record(t, 4, 8, 5782)))

	// Before the state existed there is nothing to observe.
	assert.Equal(t, None, Find(record(t, 5, 8, 5700)))
}

func TestTaanitEsther(t *testing.T) {
	// 5784: 13 Adar II is Shabbat, so the fast advances to Thursday the
	// 11th.
	thirteenth := record(t, 13, 14, 5784)
	require.Equal(t, 7, thirteenth.Weekday)
	assert.Equal(t, None, Find(thirteenth))

	eleventh := record(t, 11, 14, 5784)
	require.Equal(t, 5, eleventh.Weekday)
	assert.Equal(t, TaanitEsther, Find(eleventh))

	// 5785: 13 Adar is Thursday and the fast stays put.
	assert.Equal(t, TaanitEsther, Find(record(t, 13, 6, 5785)))
	assert.Equal(t, None, Find(record(t, 11, 6, 5785)))
}

func TestYomHaShoah(t *testing.T) {
	// 5785: 27 Nisan is Friday, observance advances to Thursday the 26th.
	require.Equal(t, 6, record(t, 27, 7, 5785).Weekday)
	assert.Equal(t, None, Find(record(t, 27, 7, 5785)))
	assert.Equal(t, YomHaShoah, Find(record(t, 26, 7, 5785)))

	// 5784: 27 Nisan is Sunday, observance moves to Monday the 28th.
	require.Equal(t, 1, record(t, 27, 7, 5784).Weekday)
	assert.Equal(t, None, Find(record(t, 27, 7, 5784)))
	assert.Equal(t, YomHaShoah, Find(record(t, 28, 7, 5784)))
	assert.Equal(t, None, Find(record(t, 26, 7, 5784)))
}

func TestYomYerushalayim(t *testing.T) {
	rec := record(t, 28, 8, 5785)
	assert.Equal(t, YomYerushalayim, Find(rec))
	assert.Equal(t, 2025, rec.GregorianYear)
	assert.Equal(t, 5, rec.GregorianMonth)
	assert.Equal(t, 26, rec.GregorianDay)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindNone, None.Kind())
	assert.Equal(t, KindRegel, Pesach.Kind())
	assert.Equal(t, KindRegel, Sukkot.Kind())
	assert.Equal(t, KindRegel, Shavuot.Kind())
	assert.Equal(t, KindFast, YomKippur.Kind())
	assert.Equal(t, KindFast, TaanitEsther.Kind())
	assert.Equal(t, KindRegular, Chanukah.Kind())
	assert.Equal(t, KindRegular, Purim.Kind())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Yom Kippur", YomKippur.String())
	assert.Equal(t, "Tu B'Shvat", TuBShvat.String())
	assert.Equal(t, "", None.String())
	assert.Equal(t, "", Holiday(99).String())
}
