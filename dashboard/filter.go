package dashboard

import (
	"strconv"
	"strings"

	"coursehub/models"
)

// Search filters are pure presentation: case-insensitive substring
// matching over fixed per-entity fields, never a network call. Applying
// the same query twice yields the same subset; an empty query returns
// the slice unchanged.

func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterUsers matches over name, email and role.
func FilterUsers(users []models.User, query string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matchesQuery(query, u.Name, u.Email, u.Role) {
			out = append(out, u)
		}
	}
	return out
}

// FilterCourses matches over title, university, instructor and
// description.
func FilterCourses(courses []models.Course, query string) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if matchesQuery(query, c.Title, c.UniversityName, c.InstructorNames, c.Description) {
			out = append(out, c)
		}
	}
	return out
}

// FilterBrowse applies the browse level filter and search together.
// Level "all" or empty matches every level.
func FilterBrowse(courses []models.Course, level, query string) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if level != "" && level != "all" && !strings.EqualFold(c.Level, level) {
			continue
		}
		if matchesQuery(query, c.Title, c.UniversityName, c.InstructorNames, c.Description) {
			out = append(out, c)
		}
	}
	return out
}

// FilterModules matches over module number and name.
func FilterModules(modules []models.Module, query string) []models.Module {
	out := make([]models.Module, 0, len(modules))
	for _, m := range modules {
		if matchesQuery(query, strconv.Itoa(m.ModuleNumber), m.Name) {
			out = append(out, m)
		}
	}
	return out
}
