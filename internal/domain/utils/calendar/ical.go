package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/lakesidedc/club-server/internal/domain/entity"
)

// ExportEventsToICS serializes the events as an iCalendar feed so members
// can subscribe from their calendar app. Cancelled events are included with
// a cancelled status rather than silently dropped.
func ExportEventsToICS(events []entity.Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Lakeside Dive Club//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	now := time.Now()
	for _, event := range events {
		e := cal.AddEvent(fmt.Sprintf("%s@lakesidedc.club", event.ID))
		e.SetDtStampTime(now)
		e.SetStartAt(event.StartTime)
		if !event.EndTime.IsZero() {
			e.SetEndAt(event.EndTime)
		} else {
			e.SetEndAt(event.StartTime.Add(1 * time.Hour))
		}
		e.SetSummary(event.Title)
		e.SetDescription(event.Description)
		e.SetLocation(event.Location)
		if event.Cancelled {
			e.SetStatus(ics.ObjectStatusCancelled)
		} else {
			e.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return []byte(cal.Serialize()), nil
}
