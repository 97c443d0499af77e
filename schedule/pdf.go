package schedule

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func siteURL() string {
	if u := os.Getenv("SITE_URL"); u != "" {
		return u
	}
	return "https://earlobe.ca"
}

// WeeklyPDF renders the this-week bucket as a printable flyer, one block
// per day, with a QR code pointing back at the site.
func WeeklyPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events, err := fetchEvents(bson.M{"confirmed": true})
	if err != nil {
		http.Error(w, "Could not load events", http.StatusInternalServerError)
		return
	}

	loc := Location()
	now := time.Now()
	sched := Build(events, venueLookup(), now, loc)

	qrPNG, err := qrcode.Encode(siteURL(), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "This Week")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, now.In(loc).Format("Monday, January 2, 2006"))
	pdf.Ln(12)

	if len(sched.ThisWeek) == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.Cell(0, 10, "No confirmed events this week.")
		pdf.Ln(10)
	}

	for _, group := range sched.ThisWeek {
		heading := group.Date
		if d, err := time.ParseInLocation(dateLayout, group.Date, loc); err == nil {
			heading = d.Format("Monday, January 2")
		}

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, heading)
		pdf.Ln(9)

		for _, event := range group.Events {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 7, event.Title)
			pdf.Ln(6)

			pdf.SetFont("Arial", "", 10)
			line := event.VenueName
			if event.StartTime != "" {
				line = fmt.Sprintf("%s - %s", event.StartTime, line)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(5)

			details := ""
			if event.Cost != "" {
				details = event.Cost
			}
			if event.Attendance != "" {
				if details != "" {
					details += " / "
				}
				details += event.Attendance
			}
			if details != "" {
				pdf.Cell(0, 6, details)
				pdf.Ln(5)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 250, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=this-week.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
