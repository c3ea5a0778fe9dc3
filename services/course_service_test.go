package services

import (
	"errors"
	"testing"

	"opencourse/models"
)

func TestCreateCourseClaimsLessons(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	orphanCourse := createTestCourse(t, db, "Old Home", instructor.ID)
	lesson := createTestLesson(t, db, "Variables", orphanCourse.ID)

	course, err := svc.CreateCourse(&CreateCourseRequest{
		Title:        "Intro to Node.js",
		InstructorID: instructor.ID,
		Lessons:      []uint{lesson.ID},
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}

	if len(course.Lessons) != 1 || course.Lessons[0].ID != lesson.ID {
		t.Fatalf("expected lesson %d to be claimed, got %+v", lesson.ID, course.Lessons)
	}
	if course.Instructor == nil || course.Instructor.ID != instructor.ID {
		t.Fatalf("expected instructor to be expanded, got %+v", course.Instructor)
	}
}

func TestListCoursesTitleFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	createTestCourse(t, db, "Introduction to Node.js", instructor.ID)
	createTestCourse(t, db, "Advanced Topics", instructor.ID)

	courses, err := svc.ListCourses(&CourseFilter{Title: "intro"})
	if err != nil {
		t.Fatalf("ListCourses() failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Title != "Introduction to Node.js" {
		t.Fatalf("unexpected course: %s", courses[0].Title)
	}
}

func TestListCoursesInstructorFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	bob := createTestUser(t, db, "Bob", "bob@example.com", models.RoleInstructor)
	createTestCourse(t, db, "Go Basics", alice.ID)
	createTestCourse(t, db, "Go Advanced", bob.ID)

	courses, err := svc.ListCourses(&CourseFilter{InstructorID: alice.ID})
	if err != nil {
		t.Fatalf("ListCourses() failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].InstructorID != alice.ID {
		t.Fatalf("expected instructor %d, got %d", alice.ID, courses[0].InstructorID)
	}
	if courses[0].Instructor == nil || courses[0].Instructor.Name != "Alice" {
		t.Fatalf("expected instructor expanded to Alice, got %+v", courses[0].Instructor)
	}
}

func TestListCoursesDanglingInstructor(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	createTestCourse(t, db, "Go Basics", instructor.ID)

	// Remove the referent out from under the course. The reference
	// dangles and expansion comes back empty.
	if err := db.Delete(&models.User{}, instructor.ID).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	courses, err := svc.ListCourses(&CourseFilter{})
	if err != nil {
		t.Fatalf("ListCourses() failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Instructor != nil {
		t.Fatalf("expected nil instructor for dangling reference, got %+v", courses[0].Instructor)
	}
}

func TestUpdateCoursePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	course, err := svc.CreateCourse(&CreateCourseRequest{
		Title:        "Go Basics",
		Description:  "A first course",
		InstructorID: instructor.ID,
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}

	updated, err := svc.UpdateCourse(course.ID, &UpdateCourseRequest{Title: "Go Fundamentals"})
	if err != nil {
		t.Fatalf("UpdateCourse() failed: %v", err)
	}
	if updated.Title != "Go Fundamentals" {
		t.Fatalf("expected updated title, got %s", updated.Title)
	}
	if updated.Description != "A first course" {
		t.Fatalf("expected description untouched, got %s", updated.Description)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	if _, err := svc.UpdateCourse(9999, &UpdateCourseRequest{Title: "Nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	course := createTestCourse(t, db, "Go Basics", instructor.ID)

	if err := svc.DeleteCourse(course.ID); err != nil {
		t.Fatalf("DeleteCourse() failed: %v", err)
	}

	courses, err := svc.ListCourses(&CourseFilter{})
	if err != nil {
		t.Fatalf("ListCourses() failed: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected no courses after delete, got %d", len(courses))
	}

	if err := svc.DeleteCourse(course.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
