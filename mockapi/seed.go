package main

import "log"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SeedDb loads demo data once; reruns against an existing database are
// no-ops.
func SeedDb() {
	var users int64
	Database.Db.Model(&UserRow{}).Count(&users)
	if users > 0 {
		return
	}

	log.Println("Seeding demo data...")

	Database.Db.Create(&[]UserRow{
		{UserID: "u-admin-1", Name: "Asha Rao", Email: "admin@coursehub.dev", Password: "admin123", Role: "admin", Approved: true},
		{UserID: "u-analyst-1", Name: "Miguel Santos", Email: "analyst@coursehub.dev", Password: "analyst123", Role: "analyst", Approved: true},
		{UserID: "u-inst-1", Name: "Priya Nair", Email: "priya@coursehub.dev", Password: "teach123", Role: "instructor", Approved: true},
		{UserID: "u-inst-2", Name: "Daniel Okafor", Email: "daniel@coursehub.dev", Password: "teach123", Role: "instructor", Approved: true},
		{UserID: "u-stud-1", Name: "Lena Fischer", Email: "lena@coursehub.dev", Password: "learn123", Role: "student", Approved: true},
		{UserID: "u-stud-2", Name: "Tom Becker", Email: "tom@coursehub.dev", Password: "learn123", Role: "student", Approved: true},
		{UserID: "u-stud-3", Name: "Yuki Tanaka", Email: "yuki@coursehub.dev", Password: "learn123", Role: "student", Approved: false},
	})

	Database.Db.Create(&[]InstructorRow{
		{UserID: "u-inst-1", Branch: "Computer Science", PhoneNumber: "+49 30 1234567"},
		{UserID: "u-inst-2", Branch: "Data Science", PhoneNumber: "+234 1 7654321"},
	})

	Database.Db.Create(&[]StudentRow{
		{UserID: "u-stud-1", Branch: "Computer Science", Country: "Germany", DOB: "2001-04-12", PhoneNumber: "+49 151 2223344"},
		{UserID: "u-stud-2", Branch: "Mechanical Engineering", Country: "Germany", DOB: "1998-11-03", PhoneNumber: "+49 160 9988776"},
		{UserID: "u-stud-3", Branch: "Computer Science", Country: "Japan", DOB: "2003-07-21", PhoneNumber: "+81 90 11223344"},
	})

	Database.Db.Create(&[]CourseRow{
		{CourseID: "c-go-1", Title: "Distributed Systems in Go", Duration: "10 weeks", Level: "advanced",
			Description: "Consensus, replication and fault tolerance.", Fees: floatPtr(299),
			UniversityName: "TU Berlin", UniversityRanking: intPtr(87), Published: true},
		{CourseID: "c-sql-1", Title: "Relational Databases", Duration: "8 weeks", Level: "intermediate",
			Description: "Modeling, normalization and query tuning.", Fees: floatPtr(199),
			UniversityName: "University of Tokyo", UniversityRanking: intPtr(23)},
		{CourseID: "c-py-1", Title: "Python for Data Analysis", Duration: "6 weeks", Level: "beginner",
			Description: "Pandas, plotting and notebooks.", Fees: floatPtr(149),
			UniversityName: "University of Lagos", UniversityRanking: intPtr(501)},
	})

	Database.Db.Create(&[]TeachesRow{
		{InstructorID: "u-inst-1", CourseID: "c-go-1"},
		{InstructorID: "u-inst-1", CourseID: "c-sql-1"},
		{InstructorID: "u-inst-2", CourseID: "c-py-1"},
	})

	Database.Db.Create(&[]EnrollmentRow{
		{UserID: "u-stud-1", CourseID: "c-go-1", Status: "ongoing", EnrollDate: "2026-06-01"},
		{UserID: "u-stud-1", CourseID: "c-sql-1", Status: "completed", Grade: "A", EnrollDate: "2026-02-10", CompletionDate: "2026-05-20"},
		{UserID: "u-stud-2", CourseID: "c-go-1", Status: "ongoing", EnrollDate: "2026-06-15"},
		{UserID: "u-stud-2", CourseID: "c-py-1", Status: "completed", Grade: "B", EnrollDate: "2026-01-05", CompletionDate: "2026-03-01"},
	})

	Database.Db.Create(&[]ModuleRow{
		{CourseID: "c-go-1", ModuleNumber: 1, Name: "Clocks and Ordering", Duration: "1 week"},
		{CourseID: "c-go-1", ModuleNumber: 2, Name: "Raft", Duration: "2 weeks"},
		{CourseID: "c-sql-1", ModuleNumber: 1, Name: "Schema Design", Duration: "1 week"},
	})

	Database.Db.Create(&[]ContentRow{
		{ContentID: "ct-1", CourseID: "c-go-1", ModuleNumber: 1, Title: "Lamport Clocks", Type: "video", URL: "https://videos.coursehub.dev/lamport"},
		{ContentID: "ct-2", CourseID: "c-go-1", ModuleNumber: 2, Title: "Raft Paper", Type: "document", URL: "https://docs.coursehub.dev/raft"},
	})

	Database.Db.Create(&[]AssignmentRow{
		{AssignmentID: "a-1", CourseID: "c-go-1", Title: "Build a KV store", Description: "Replicated key-value store with Raft.",
			AssignmentURL: "https://docs.coursehub.dev/kv-assignment", MaxMarks: 100, DueDate: "2026-09-15"},
		{AssignmentID: "a-2", CourseID: "c-sql-1", Title: "Normalize a schema", Description: "Take the shop schema to 3NF.",
			AssignmentURL: "https://docs.coursehub.dev/3nf-assignment", MaxMarks: 50, DueDate: "2026-04-01"},
	})

	marks := 45.0
	feedback := "Clean decomposition."
	Database.Db.Create(&SubmissionRow{
		AssignmentID: "a-2", UserID: "u-stud-1",
		SubmissionURL: "https://github.com/lena/3nf", MarksObtained: &marks,
		Feedback: &feedback, SubmittedAt: "2026-03-28T14:00:00Z",
	})

	Database.Db.Create(&[]AnnouncementRow{
		{AnnouncementID: "an-1", CourseID: "c-go-1", Title: "Week 3 lab moved", Body: "The Raft lab starts Thursday instead of Tuesday.", PostedAt: "2026-08-20T09:00:00Z"},
	})

	log.Println("Seed data loaded.")
}
