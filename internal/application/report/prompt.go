package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/smartsales/backend/internal/domain/report"
)

// Prompt parsing for report requests. All patterns target lowercase text,
// with and without accents, because users type either form.
var (
	explicitRangeRe = regexp.MustCompile(`del\s+(\d{2}/\d{2}/\d{4})\s+al\s+(\d{2}/\d{2}/\d{4})`)
	lastNDaysRe     = regexp.MustCompile(`(últimos|ultimos)\s+(\d+)\s+d(í|i)as`)
	thisMonthRe     = regexp.MustCompile(`este\s+mes|últimos\s+30\s+d(í|i)as|ultimos\s+30\s+dias`)
	lastMonthRe     = regexp.MustCompile(`mes\s+pasado`)
	monthNameRe     = regexp.MustCompile(`\b(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b`)

	excelRe = regexp.MustCompile(`excel|xlsx`)

	byProductRe  = regexp.MustCompile(`(agrupado|agrupar)\s+por\s+producto`)
	byCustomerRe = regexp.MustCompile(`(agrupado|agrupar)\s+por\s+cliente`)
	byCategoryRe = regexp.MustCompile(`(agrupado|agrupar)\s+por\s+categor(í|i)a`)
)

var monthNumbers = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// ParsePrompt extracts the report intent from a free-text prompt. Date rules
// are tried in order and the first match wins; a prompt matching none of them
// yields an unbounded range. Invalid explicit dates fall through silently to
// the next rule rather than failing the request.
func ParsePrompt(text string, today time.Time) report.Intent {
	lowered := strings.ToLower(text)

	intent := report.Intent{
		Format:  parseFormat(lowered),
		GroupBy: parseGroupBy(lowered),
	}
	intent.From, intent.To = parseDateRange(lowered, today)
	return intent
}

func parseFormat(lowered string) report.Format {
	if excelRe.MatchString(lowered) {
		return report.FormatExcel
	}
	return report.FormatPDF
}

func parseGroupBy(lowered string) report.GroupBy {
	switch {
	case byProductRe.MatchString(lowered):
		return report.GroupByProduct
	case byCustomerRe.MatchString(lowered):
		return report.GroupByCustomer
	case byCategoryRe.MatchString(lowered):
		return report.GroupByCategory
	default:
		return report.GroupByNone
	}
}

func parseDateRange(lowered string, today time.Time) (*time.Time, *time.Time) {
	today = dateOnly(today)

	if m := explicitRangeRe.FindStringSubmatch(lowered); m != nil {
		from, errFrom := time.ParseInLocation("02/01/2006", m[1], today.Location())
		to, errTo := time.ParseInLocation("02/01/2006", m[2], today.Location())
		if errFrom == nil && errTo == nil {
			return &from, &to
		}
	}

	if m := lastNDaysRe.FindStringSubmatch(lowered); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil && n > 0 {
			from := today.AddDate(0, 0, -(n - 1))
			to := today
			return &from, &to
		}
	}

	if thisMonthRe.MatchString(lowered) {
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to := today
		return &from, &to
	}

	if lastMonthRe.MatchString(lowered) {
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to := firstOfThis.AddDate(0, 0, -1)
		from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, today.Location())
		return &from, &to
	}

	if m := monthNameRe.FindStringSubmatch(lowered); m != nil {
		month := monthNumbers[m[1]]
		from := time.Date(today.Year(), month, 1, 0, 0, 0, 0, today.Location())
		to := lastDayOfMonth(from)
		return &from, &to
	}

	return nil, nil
}

// lastDayOfMonth finds the month's final day by stepping past day 28, which
// every month has, and backing up from the following month's first day.
func lastDayOfMonth(firstDay time.Time) time.Time {
	day28 := firstDay.AddDate(0, 0, 27)
	nextMonth := day28.AddDate(0, 0, 4)
	firstOfNext := time.Date(nextMonth.Year(), nextMonth.Month(), 1, 0, 0, 0, 0, firstDay.Location())
	return firstOfNext.AddDate(0, 0, -1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
