package services

import (
	"errors"
	"testing"

	"opencourse/models"
)

func TestListLessonsCourseFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewLessonService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	courseA := createTestCourse(t, db, "Go Basics", instructor.ID)
	courseB := createTestCourse(t, db, "Go Advanced", instructor.ID)
	createTestLesson(t, db, "Variables", courseA.ID)
	createTestLesson(t, db, "Goroutines", courseB.ID)

	lessons, err := svc.ListLessons(&LessonFilter{CourseID: courseA.ID})
	if err != nil {
		t.Fatalf("ListLessons() failed: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if lessons[0].Title != "Variables" {
		t.Fatalf("unexpected lesson: %s", lessons[0].Title)
	}
	if lessons[0].Course == nil || lessons[0].Course.Title != "Go Basics" {
		t.Fatalf("expected course expanded, got %+v", lessons[0].Course)
	}
}

func TestLessonDanglingCourse(t *testing.T) {
	db := newTestDB(t)
	lessonSvc := NewLessonService(db)
	courseSvc := NewCourseService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	course := createTestCourse(t, db, "Go Basics", instructor.ID)
	lesson := createTestLesson(t, db, "Variables", course.ID)

	// Deleting the course does not cascade; the lesson keeps its
	// course_id and expansion comes back empty.
	if err := courseSvc.DeleteCourse(course.ID); err != nil {
		t.Fatalf("DeleteCourse() failed: %v", err)
	}

	got, err := lessonSvc.GetLessonByID(lesson.ID)
	if err != nil {
		t.Fatalf("GetLessonByID() failed: %v", err)
	}
	if got.CourseID != course.ID {
		t.Fatalf("expected course_id %d to remain, got %d", course.ID, got.CourseID)
	}
	if got.Course != nil {
		t.Fatalf("expected nil course for dangling reference, got %+v", got.Course)
	}
}

func TestUpdateLesson(t *testing.T) {
	db := newTestDB(t)
	svc := NewLessonService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	course := createTestCourse(t, db, "Go Basics", instructor.ID)
	lesson := createTestLesson(t, db, "Variables", course.ID)

	updated, err := svc.UpdateLesson(lesson.ID, &UpdateLessonRequest{Content: "var x int"})
	if err != nil {
		t.Fatalf("UpdateLesson() failed: %v", err)
	}
	if updated.Content != "var x int" {
		t.Fatalf("expected updated content, got %s", updated.Content)
	}
	if updated.Title != "Variables" {
		t.Fatalf("expected title untouched, got %s", updated.Title)
	}

	if _, err := svc.UpdateLesson(9999, &UpdateLessonRequest{Title: "Nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteLesson(t *testing.T) {
	db := newTestDB(t)
	svc := NewLessonService(db)

	instructor := createTestUser(t, db, "Alice", "alice@example.com", models.RoleInstructor)
	course := createTestCourse(t, db, "Go Basics", instructor.ID)
	lesson := createTestLesson(t, db, "Variables", course.ID)

	if err := svc.DeleteLesson(lesson.ID); err != nil {
		t.Fatalf("DeleteLesson() failed: %v", err)
	}
	if err := svc.DeleteLesson(lesson.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
