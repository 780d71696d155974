package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// TideVerbosity selects the output shape of FormatTideEvents.
type TideVerbosity int

const (
	// TideShort renders "H 5:45AM, L 11:50AM".
	TideShort TideVerbosity = iota
	// TideLong renders "High 5:45 AM (4.2 ft), Low 11:50 AM (0.3 ft)".
	TideLong
)

// NoTides is returned when no high or low falls in the morning span.
const NoTides = "--"

// FormatTideEvents renders the high/low tides relevant to a dawn start:
// events on the target local date with an hour in [4,12]. Non-high/low events
// are dropped. Source order is preserved; NOAA supplies events
// chronologically and this does not re-sort.
func FormatTideEvents(events []models.TideEvent, target time.Time, verbosity TideVerbosity) string {
	var parts []string
	for _, ev := range events {
		if ev.Type != models.TideHigh && ev.Type != models.TideLow {
			continue
		}
		if !sameLocalDate(ev.Time, target) {
			continue
		}
		if h := ev.Time.Hour(); h < 4 || h > 12 {
			continue
		}
		parts = append(parts, formatTideEvent(ev, verbosity))
	}
	if len(parts) == 0 {
		return NoTides
	}
	return strings.Join(parts, ", ")
}

func formatTideEvent(ev models.TideEvent, verbosity TideVerbosity) string {
	if verbosity == TideLong {
		label := "Low"
		if ev.Type == models.TideHigh {
			label = "High"
		}
		return fmt.Sprintf("%s %s (%.1f ft)", label, ev.Time.Format("3:04 PM"), ev.Height)
	}
	return fmt.Sprintf("%s %s", ev.Type, ev.Time.Format("3:04PM"))
}
