package customdays

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileText is the annotated starter content written when
// bootstrapping a user's custom-day file.
const DefaultFileText = `# custom days configuration file
#
# Should you mangle this file and wish to restore its default content,
# rename or delete it and run the program again; the default content is
# regenerated automatically.

# How to handle events scheduled for dates that don't occur in all
# calendar years:
#    0 - Do not mark the event in such a calendar year
#    1 - Mark the event the following day
#   -1 - Mark the event the prior day
CHESHVAN_30 = 1
KISLEV_30   = 1
FEBRUARY_29 =-1

# How to handle events scheduled for Adar in a year with two Adars
#    1 - Mark the event in Adar I
#    2 - Mark the event in Adar II
ADAR_IN_LEAP_YEAR = 2

# How to handle events scheduled for days 1 - 29 of Adar I in a year
# with only one Adar (eg. Purim katan)
#    0 - Do not mark the event in such a calendar year
#    1 - Mark the event in Adar
ADAR_I = 0

# How to handle events scheduled for the 30th day of Adar I in a year
# with only one Adar (which only has 29 days)
#    0 - Do not mark the event in such a calendar year
#    1 - Mark the event as 1 Nissan
#   -1 - Mark the event as 29 Adar
ADAR_I_30 = -1

# How to handle events scheduled for Adar II in a year without Adar II
#    0 - Do not mark the event in such a calendar year
#    1 - Mark the event in Nissan
#   -1 - Mark the event in Adar
ADAR_II = -1

# NOTE: Because the data in this file is processed sequentially,
#       re-assigning any of the above values amongst your custom day
#       definitions takes effect only for the definitions that follow.

# Format of custom day entries
# Each entry consists of 19 fields, comma-delimited, on a single
# 'logical' line; split an entry over more than one physical line by
# ending the line with a '\'. All fields are mandatory:
#  1) day_type - H for Hebrew calendar dates, G for gregorian calendar
#                dates. Types h and g mark an event occurring on the
#                'nth' 'day_of_week' of 'month'.
#  2) day_symbol - a single printable ascii character marking the day in
#                calendar output. The characters /+*~!@$'" and backquote
#                are reserved and may not be used.
#  3) start_year - the first year for this commemoration.
#  4) final_year - the final year, or zero if open-ended. Both year
#                fields follow the calendar of the day_type.
#  5) month - 1 - 12 for Tishrei - Elul, 13 - 14 for Adar I/II;
#                or 1 - 12 for January - December.
#  6) day_of_month - must be zero for day types h and g.
#  7) 'nth' - eg. nth Shabbat in Adar, or nth Tuesday in April;
#  8) day_of_week - 7 = Shabbat. Both must be zero for types H and G.
#  9) description, local language, long form - max 40 characters
# 10) description, local language, short form - max 15 characters
# 11) description, Hebrew, long form - max 40 characters
# 12) description, Hebrew, short form - max 15 characters
#     Commas and semicolons are prohibited inside descriptions.
# 13) - 19) day shifts applied when the event falls on a Friday,
#     Shabbat, Sunday, or the 2nd - 5th day of the week, respectively;
#     each in the range -9 to 9, zero for no shift.

# Examples
# ========
# 1] One following minhag ashkenaz for selichot can mark the first night
#    of selichot as follows:
H, _, 3001, 0000, 1,  1, 0, 0, יום ראשון של סליחות, סליחות יום א, First night of selichot, Selichot I,-5,-6,-7,-8,-9,-3,-4
# 2] To mark the Shabbat prior to a yahrtzeit (for various customs)
H, _, 5741, 0000, 6, 27, 0, 0, שבת זכרון של פלוני, זכרון פלוני, Shabbat yahrtzeit for xxxx, Shabbat yahrtzeit,-6,-7,-1,-2,-3,-4,-5

# Examples - Other special days
# =============================
H, _, 3001, 0000,  8, 14, 0, 0, פסח שני, פסח שני, Pesach Sheni, Pesach Sheni,               0, 0,  0,  0,  0,  0,  0
H, _, 3001, 0000, 13, 14, 0, 0, פורים קטן, פורים קטן, Purim Katan, Purim Katan,             0, 0,  0,  0,  0,  0,  0
`

// WriteDefaultFile creates path with DefaultFileText, creating parent
// directories as needed. It refuses to overwrite an existing file.
func WriteDefaultFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("custom days file %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking custom days file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating custom days directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(DefaultFileText), 0o644); err != nil {
		return fmt.Errorf("writing custom days file: %w", err)
	}
	return nil
}
