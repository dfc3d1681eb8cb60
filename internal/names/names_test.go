package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baruchs/hebdate/internal/holidays"
)

func TestSupportedLocales(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "he"}, SupportedLocales())
}

func TestEnglishNames(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Tishrei", l.HebrewMonth(1))
	assert.Equal(t, "Adar", l.HebrewMonth(6))
	assert.Equal(t, "Adar I", l.HebrewMonth(13))
	assert.Equal(t, "Adar II", l.HebrewMonth(14))
	assert.Equal(t, "Elul", l.HebrewMonth(12))

	assert.Equal(t, "January", l.GregorianMonth(1))
	assert.Equal(t, "December", l.GregorianMonth(12))
	assert.Equal(t, "Sep", l.GregorianMonthShort(9))

	assert.Equal(t, "Sunday", l.Weekday(1))
	assert.Equal(t, "Saturday", l.Weekday(7))
	assert.Equal(t, "Wed", l.WeekdayShort(4))

	assert.Equal(t, "Rosh Hashana I", l.Holiday(holidays.RoshHashanaI, false))
	assert.Equal(t, "Rosh Hashana", l.Holiday(holidays.RoshHashanaI, true))
	assert.Equal(t, "Hol hamoed Pesach", l.Holiday(holidays.HolHamoedPesach, false))
	assert.Equal(t, "Hol hamoed", l.Holiday(holidays.HolHamoedPesach, true))
	assert.Equal(t, "Yom Yerushalayim", l.Holiday(holidays.YomYerushalayim, false))
}

func TestHebrewNames(t *testing.T) {
	l, err := New("he")
	require.NoError(t, err)

	assert.Equal(t, "תשרי", l.HebrewMonth(1))
	assert.Equal(t, "אדר ב'", l.HebrewMonth(14))
	assert.Equal(t, "ינואר", l.GregorianMonth(1))
	assert.Equal(t, "שבת", l.Weekday(7))
	assert.Equal(t, "ש", l.WeekdayShort(7))
	assert.Equal(t, "פורים", l.Holiday(holidays.Purim, false))
	assert.Equal(t, "חוה\"מ סוכות", l.Holiday(holidays.HolHamoedSukkot, true))
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	l, err := New("fr")
	require.NoError(t, err)

	assert.Equal(t, "Nisan", l.HebrewMonth(7))
	assert.Equal(t, "Pesach", l.Holiday(holidays.Pesach, false))
}

func TestOutOfRangeNames(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Empty(t, l.HebrewMonth(0))
	assert.Empty(t, l.HebrewMonth(15))
	assert.Empty(t, l.GregorianMonth(13))
	assert.Empty(t, l.Weekday(8))
	assert.Empty(t, l.Holiday(holidays.None, false))
}
