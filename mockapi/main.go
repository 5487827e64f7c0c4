package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"coursehub/config"
)

func main() {
	config.LoadConfig()
	ConnectDb(config.AppConfig.MockDBName)
	SeedDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	SetupRoutes(app)

	log.Printf("Mock API is running on port %s", config.AppConfig.MockPort)
	log.Fatal(app.Listen(":" + config.AppConfig.MockPort))
}

// SetupRoutes registers the full REST surface under /api.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", Health)
	api.Post("/login", Login)
	api.Post("/signup", Signup)
	api.Get("/dashboard", Dashboard)

	api.Get("/courses", ListCourses)
	api.Post("/courses/enroll", Enroll)
	api.Get("/courses/my-courses", MyCourses)

	student := api.Group("/student")
	student.Get("/profile", GetStudentProfile)
	student.Put("/profile", UpdateStudentProfile)
	student.Get("/courses/:id/modules", StudentCourseModules)
	student.Get("/courses/:id/assignments", StudentCourseAssignments)
	student.Get("/courses/:id/announcements", StudentCourseAnnouncements)
	student.Get("/courses/:id/analytics", StudentCourseAnalytics)
	student.Post("/assignments/submit", SubmitAssignment)

	admin := api.Group("/admin")
	admin.Get("/users", ListUsers)
	admin.Post("/users/:id/approve", ApproveUser)
	admin.Delete("/users/:id", DeleteUser)
	admin.Get("/instructors", ListInstructors)
	admin.Get("/courses", AdminCourses)
	admin.Post("/courses", CreateCourse)
	admin.Put("/courses/:id", UpdateCourse)
	admin.Delete("/courses/:id", DeleteCourse)
	admin.Post("/assign", AssignInstructor)
	admin.Delete("/courses/:id/instructors/:iid", RemoveInstructor)

	instructor := api.Group("/instructor")
	instructor.Get("/courses", InstructorCourses)
	instructor.Get("/courses/:id/students", CourseStudents)
	instructor.Get("/courses/:id/modules", InstructorCourseModules)
	instructor.Post("/grade", GradeStudent)
	instructor.Post("/remove-student", RemoveStudentFromCourse)
	instructor.Post("/module", CreateModule)
	instructor.Post("/module-content", AddModuleContent)

	analyst := api.Group("/analyst")
	analyst.Get("/overview", AnalystOverview)
	analyst.Get("/courses", AnalystCourses)
	analyst.Get("/insights", AnalystInsights)
	analyst.Get("/kpis", AnalystKPIs)
	analyst.Get("/geographic", AnalystGeographic)
	analyst.Get("/age-demographics", AnalystAgeDemographics)
	analyst.Get("/hot-topics", AnalystHotTopics)
	analyst.Get("/instructor-workload", AnalystInstructorWorkload)
	analyst.Get("/chart-builder", ChartBuilder)
	analyst.Post("/courses/:id/publish", SetCoursePublished)
}
