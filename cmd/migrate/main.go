package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusai-be/internal/model"
	"campusai-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Step 1: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.Faq{},
		&model.ContactMessage{},
		&model.DashboardWidget{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}
	color.Green("Migrated %d tables", len(models))

	color.Cyan("Step 2: Seeding FAQs...")
	seedFaqs(db)

	color.Cyan("Step 3: Seeding dashboard widgets...")
	seedDashboardWidgets(db)

	color.Green("Migration complete")
}

// seedFaqs inserts the default FAQ set when the table is empty.
func seedFaqs(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Faq{}).Count(&count).Error; err != nil {
		color.Red("Error: failed to count faqs: %v", err)
		return
	}
	if count > 0 {
		color.Yellow("FAQs already present, skipping")
		return
	}

	faqs := []model.Faq{
		{
			Question: "What courses does the college offer?",
			Answer:   "Our college offers a wide range of undergraduate and postgraduate programs including Computer Science, Engineering, Business, Arts, Sciences, and more. You can ask the chatbot for specific details about any program you're interested in.",
			Category: "admissions",
		},
		{
			Question: "How do I apply for admission?",
			Answer:   "You can apply online through our admission portal. The chatbot can guide you through the entire application process, including required documents, deadlines, and eligibility criteria for your chosen program.",
			Category: "admissions",
		},
		{
			Question: "Is the chatbot available 24/7?",
			Answer:   "Yes! CampusAI is available 24 hours a day, 7 days a week to answer your questions. You can access it anytime from anywhere with an internet connection.",
			Category: "general",
		},
		{
			Question: "What if the chatbot can't answer my question?",
			Answer:   "If CampusAI can't answer your question, it will connect you with a human representative or provide contact information for the relevant department. You can also submit a ticket for complex inquiries that require human assistance.",
			Category: "general",
		},
		{
			Question: "Can the chatbot help me with my fee payment?",
			Answer:   "CampusAI can provide information about fee structures, payment deadlines, and available payment methods. For security reasons, actual payments are processed through our secure payment portal, which the chatbot can direct you to.",
			Category: "administrative",
		},
	}

	if err := db.Create(&faqs).Error; err != nil {
		color.Red("Error: failed to seed faqs: %v", err)
		return
	}
	color.Green("Seeded %d FAQs", len(faqs))
}

// seedDashboardWidgets inserts the display blocks the student dashboard
// renders. Payloads are opaque JSON documents.
func seedDashboardWidgets(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.DashboardWidget{}).Count(&count).Error; err != nil {
		color.Red("Error: failed to count dashboard widgets: %v", err)
		return
	}
	if count > 0 {
		color.Yellow("Dashboard widgets already present, skipping")
		return
	}

	widgets := []model.DashboardWidget{
		{
			Kind:     "stats",
			Title:    "At a Glance",
			Position: 0,
			Payload: datatypes.JSON(`[
				{"label": "Enrolled Courses", "value": 4, "note": "Currently enrolled courses"},
				{"label": "Assignments Due", "value": 3, "note": "In the next two weeks"},
				{"label": "GPA", "value": 3.6, "note": "Cumulative"},
				{"label": "Credits Earned", "value": 54, "note": "Of 120 required"}
			]`),
		},
		{
			Kind:     "courses",
			Title:    "Enrolled Courses",
			Position: 1,
			Payload: datatypes.JSON(`[
				{"name": "Mathematics 102", "instructor": "Dr. Reeves", "progress": 64},
				{"name": "Computer Science 301", "instructor": "Prof. Okafor", "progress": 48},
				{"name": "Business Management 204", "instructor": "Dr. Lindqvist", "progress": 71},
				{"name": "Physics Lab", "instructor": "Prof. Tanaka", "progress": 55}
			]`),
		},
		{
			Kind:     "deadlines",
			Title:    "Upcoming Deadlines",
			Position: 2,
			Payload: datatypes.JSON(`[
				{"course": "Computer Science 301", "task": "Assignment 4", "due": "2025-05-02"},
				{"course": "Mathematics 102", "task": "Midterm exam", "due": "2025-05-09"},
				{"course": "Business Management 204", "task": "Case study report", "due": "2025-05-14"}
			]`),
		},
		{
			Kind:     "announcements",
			Title:    "Announcements",
			Position: 3,
			Payload: datatypes.JSON(`[
				{"title": "Library extended hours during finals", "date": "2025-04-28"},
				{"title": "Fall registration opens May 1st", "date": "2025-04-25"},
				{"title": "Career fair next Thursday in the Student Union", "date": "2025-04-22"}
			]`),
		},
		{
			Kind:     "schedule",
			Title:    "Weekly Schedule",
			Position: 4,
			Payload: datatypes.JSON(`{
				"monday": [
					{"name": "Mathematics 102", "time": "9:00 - 10:30 AM", "room": "Hall B-101"},
					{"name": "Computer Science 301", "time": "2:00 - 3:30 PM", "room": "Tech Building 204"}
				],
				"tuesday": [
					{"name": "Business Management 204", "time": "11:00 AM - 12:30 PM", "room": "Business Center 305"}
				],
				"wednesday": [
					{"name": "Mathematics 102", "time": "9:00 - 10:30 AM", "room": "Hall B-101"},
					{"name": "Physics Lab", "time": "3:00 - 5:00 PM", "room": "Science Wing 110"}
				],
				"thursday": [
					{"name": "Business Management 204", "time": "11:00 AM - 12:30 PM", "room": "Business Center 305"},
					{"name": "Computer Science 301", "time": "2:00 - 3:30 PM", "room": "Tech Building 204"}
				],
				"friday": [
					{"name": "Study Group", "time": "10:00 - 11:30 AM", "room": "Library Room 3"}
				]
			}`),
		},
		{
			Kind:     "resources",
			Title:    "Student Resources",
			Position: 5,
			Payload: datatypes.JSON(`[
				{"title": "Academic Advising", "description": "Connect with your academic advisor for course planning and career guidance."},
				{"title": "Library Services", "description": "Access digital archives, study rooms, and research assistance."},
				{"title": "Learning Center", "description": "Free tutoring and study skills workshops for all students."},
				{"title": "Career Services", "description": "Resume reviews, interview prep, and internship listings."}
			]`),
		},
	}

	if err := db.Create(&widgets).Error; err != nil {
		color.Red("Error: failed to seed dashboard widgets: %v", err)
		return
	}
	color.Green("Seeded %d dashboard widgets", len(widgets))
}
