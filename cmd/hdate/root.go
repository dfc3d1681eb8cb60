package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/baruchs/hebdate/internal/calendar"
	"github.com/baruchs/hebdate/internal/config"
	"github.com/baruchs/hebdate/internal/customdays"
	"github.com/baruchs/hebdate/internal/holidays"
	"github.com/baruchs/hebdate/internal/logger"
	"github.com/baruchs/hebdate/internal/names"
)

var rootCmd = &cobra.Command{
	Use:   "hdate [day] [month] [year]",
	Short: "Hebrew and Gregorian date conversion with custom day rules",
	Long: `hdate converts between the Gregorian and Hebrew calendars, reports the
holiday falling on a date, and matches user-defined custom day rules.

With no arguments it reports today. A day of 0 queries a whole month,
a month of 0 a whole year. By default the arguments are a Gregorian
date; pass --hebrew-query to interpret them as a Hebrew one.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runRoot,
}

var (
	flagHebrewQuery bool
	flagShort       bool
	flagCustomDays  string
	flagLocale      string
	flagInit        bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagHebrewQuery, "hebrew-query", "H", false, "Interpret the date arguments as a Hebrew date")
	rootCmd.Flags().BoolVarP(&flagShort, "short", "s", false, "Use abbreviated names")
	rootCmd.Flags().StringVar(&flagCustomDays, "custom-days", "", "Path to the custom days file (default CUSTOM_DAYS_PATH)")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "Locale for names, en or he (default LOCALE)")
	rootCmd.Flags().BoolVar(&flagInit, "init", false, "Write the documented default custom days file and exit")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagCustomDays != "" {
		cfg.CustomDaysPath = flagCustomDays
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagShort {
		cfg.TextForm = config.TextFormShort
	}
	log := logger.Setup(cfg)

	if flagInit {
		if cfg.CustomDaysPath == "" {
			return errors.New("--init needs a path, via --custom-days or CUSTOM_DAYS_PATH")
		}
		if err := customdays.WriteDefaultFile(cfg.CustomDaysPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.CustomDaysPath)
		return nil
	}

	q, err := parseQuery(args)
	if err != nil {
		return err
	}

	loc, err := names.New(cfg.Locale)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// A fully specified date prints its record and holiday; month and
	// year queries go straight to the custom day scan.
	if q.Day != 0 && q.Month != 0 {
		var rec calendar.DateRecord
		if q.Flavor == customdays.Hebrew {
			rec, err = calendar.FromHebrew(q.Day, q.Month, q.Year)
		} else {
			rec, err = calendar.FromGregorian(q.Day, q.Month, q.Year)
		}
		if err != nil {
			return err
		}
		printRecord(out, rec, loc, cfg.ShortForm())
	}

	occs, err := scanCustomDays(cfg, q, log)
	if err != nil {
		return err
	}
	for _, o := range occs {
		printOccurrence(out, o, loc, cfg.ShortForm())
	}

	return nil
}

// parseQuery maps the positional arguments onto a custom day query.
// Three arguments are day month year, two are month year, one is a bare
// year; none means today.
func parseQuery(args []string) (customdays.Query, error) {
	q := customdays.Query{Flavor: customdays.Gregorian}
	if flagHebrewQuery {
		q.Flavor = customdays.Hebrew
	}

	if len(args) == 0 {
		now := time.Now()
		rec, err := calendar.FromGregorian(now.Day(), int(now.Month()), now.Year())
		if err != nil {
			return q, err
		}
		if q.Flavor == customdays.Hebrew {
			q.Day, q.Month, q.Year = rec.HebrewDay, rec.HebrewMonth, rec.HebrewYear
		} else {
			q.Day, q.Month, q.Year = rec.GregorianDay, rec.GregorianMonth, rec.GregorianYear
		}
		return q, nil
	}

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return q, fmt.Errorf("argument %q is not a number", a)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		q.Year = nums[0]
	case 2:
		q.Month, q.Year = nums[0], nums[1]
	case 3:
		q.Day, q.Month, q.Year = nums[0], nums[1], nums[2]
	}
	return q, nil
}

// scanCustomDays runs the rule file against the query. A missing file is
// not an error, there is simply nothing to match.
func scanCustomDays(cfg *config.Config, q customdays.Query, log *slog.Logger) ([]customdays.Occurrence, error) {
	if cfg.CustomDaysPath == "" {
		return nil, nil
	}
	f, err := os.Open(cfg.CustomDaysPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no custom days file", "path", cfg.CustomDaysPath)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	res, err := customdays.Scan(f, q, customdays.ScanOptions{
		ShortForm:  cfg.ShortForm(),
		HebrewText: cfg.Locale == "he",
		MaxResults: cfg.MaxResults,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.CustomDaysPath, err)
	}
	return res.All(), nil
}

func printRecord(w io.Writer, rec calendar.DateRecord, loc *names.Localizer, short bool) {
	weekday := loc.Weekday(rec.Weekday)
	gmonth := loc.GregorianMonth(rec.GregorianMonth)
	if short {
		weekday = loc.WeekdayShort(rec.Weekday)
		gmonth = loc.GregorianMonthShort(rec.GregorianMonth)
	}
	fmt.Fprintf(w, "%s, %d %s %d\n", weekday, rec.GregorianDay, gmonth, rec.GregorianYear)
	fmt.Fprintf(w, "%d %s %d\n", rec.HebrewDay, loc.HebrewMonth(rec.HebrewMonth), rec.HebrewYear)

	if h := holidays.Find(rec); h != holidays.None {
		fmt.Fprintf(w, "%s\n", loc.Holiday(h, short))
	}
}

func printOccurrence(w io.Writer, o customdays.Occurrence, loc *names.Localizer, short bool) {
	rec := o.Record
	fmt.Fprintf(w, "%c %s: %d %s %d (%04d-%02d-%02d)\n",
		o.Symbol, o.Description,
		rec.HebrewDay, loc.HebrewMonth(rec.HebrewMonth), rec.HebrewYear,
		rec.GregorianYear, rec.GregorianMonth, rec.GregorianDay)
}
