package seeder

import (
	"time"

	"github.com/workchatseattle/community-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

// SampleEvents returns the demo catalog: upcoming online and in-person
// events plus past events with recordings.
func SampleEvents() []domain.Event {
	return []domain.Event{
		{
			Title:       "Career Growth Strategies for Tech Professionals",
			Description: "Join us for an insightful discussion on navigating career growth in the tech industry. We will cover topics such as building your personal brand, networking effectively, and identifying opportunities for advancement.",
			Date:        time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC),
			IsOnline:    true,
			ZoomLink:    strPtr("https://zoom.us/j/example1"),
		},
		{
			Title:       "Women in Leadership: Panel Discussion",
			Description: "Hear from successful women leaders across various industries as they share their journeys, challenges, and advice for aspiring leaders. Q&A session included.",
			Date:        time.Date(2026, 4, 1, 17, 30, 0, 0, time.UTC),
			IsOnline:    true,
			ZoomLink:    strPtr("https://zoom.us/j/example2"),
		},
		{
			Title:       "Networking Mixer - Spring 2026",
			Description: "An informal networking event to connect with fellow community members. Great opportunity to expand your professional network in the Seattle area.",
			Date:        time.Date(2026, 3, 22, 18, 0, 0, 0, time.UTC),
			Location:    strPtr("Seattle, WA"),
		},
		{
			Title:        "Resume Workshop",
			Description:  "Learn how to craft a compelling resume that stands out. Our expert will provide tips on formatting, content, and tailoring your resume for different roles.",
			Date:         time.Date(2025, 12, 10, 18, 0, 0, 0, time.UTC),
			IsOnline:     true,
			RecordingURL: strPtr("https://youtube.com/watch?v=example1"),
		},
		{
			Title:        "Interview Skills Masterclass",
			Description:  "Master the art of interviewing with practical tips and mock interview sessions. Covers behavioral, technical, and case interviews.",
			Date:         time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC),
			IsOnline:     true,
			RecordingURL: strPtr("https://youtube.com/watch?v=example2"),
		},
	}
}
