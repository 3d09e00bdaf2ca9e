package fixtures

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCatalog checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalog(c *Catalog) []error {
	var errs []error
	errs = append(errs, validateFields(c)...)

	courses := make(map[int]bool)
	for i, co := range c.Courses {
		if courses[co.ID] {
			errs = append(errs, fmt.Errorf("courses[%d].id: duplicate id %d", i, co.ID))
		}
		courses[co.ID] = true
	}

	lessonCourse := make(map[int]int)
	orders := make(map[[2]int]bool)
	for i, l := range c.Lessons {
		prefix := fmt.Sprintf("lessons[%d]", i)
		if _, dup := lessonCourse[l.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, l.ID))
		}
		lessonCourse[l.ID] = l.CourseID
		if !courses[l.CourseID] {
			errs = append(errs, fmt.Errorf("%s.course_id: course %d not found", prefix, l.CourseID))
		}
		key := [2]int{l.CourseID, l.Order}
		if orders[key] {
			errs = append(errs, fmt.Errorf("%s.order: order %d already used in course %d", prefix, l.Order, l.CourseID))
		}
		orders[key] = true
		errs = append(errs, validateOptional(prefix+".completed_at", l.CompletedAt, timestampLayout)...)
	}

	assignments := make(map[int]bool)
	submissions := make(map[int]bool)
	for i, a := range c.Assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)
		if assignments[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, a.ID))
		}
		assignments[a.ID] = true
		if _, ok := lessonCourse[a.LessonID]; !ok {
			errs = append(errs, fmt.Errorf("%s.lesson_id: lesson %d not found", prefix, a.LessonID))
		}
		errs = append(errs, validateOptional(prefix+".due_date", a.DueDate, dateLayout)...)
		for j, s := range a.Submissions {
			sp := fmt.Sprintf("%s.submissions[%d]", prefix, j)
			if submissions[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", sp, s.ID))
			}
			submissions[s.ID] = true
			errs = append(errs, validateOptional(sp+".submitted_at", &s.SubmittedAt, timestampLayout)...)
		}
	}

	users := make(map[int]bool)
	for i, u := range c.Users {
		prefix := fmt.Sprintf("users[%d]", i)
		if users[u.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, u.ID))
		}
		users[u.ID] = true
		for j, id := range u.CompletedLessons {
			if _, ok := lessonCourse[id]; !ok {
				errs = append(errs, fmt.Errorf("%s.completed_lessons[%d]: lesson %d not found", prefix, j, id))
			}
		}
		for j, cert := range u.Certificates {
			cp := fmt.Sprintf("%s.certificates[%d]", prefix, j)
			if !courses[cert.CourseID] {
				errs = append(errs, fmt.Errorf("%s.course_id: course %d not found", cp, cert.CourseID))
			}
			errs = append(errs, validateOptional(cp+".issued_date", &cert.IssuedDate, dateLayout)...)
		}
		errs = append(errs, validateOptional(prefix+".joined_at", u.JoinedAt, timestampLayout, dateLayout)...)
	}

	seen := make(map[int]bool)
	for i, p := range c.Progress {
		prefix := fmt.Sprintf("progress[%d]", i)
		if !users[p.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: user %d not found", prefix, p.UserID))
		}
		if seen[p.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: duplicate progress for user %d", prefix, p.UserID))
		}
		seen[p.UserID] = true
		errs = append(errs, validateCourseProgress(prefix, p.Courses, courses, lessonCourse)...)
		for j, d := range p.ActivityDates {
			errs = append(errs, validateOptional(fmt.Sprintf("%s.activity_dates[%d]", prefix, j), &d, dateLayout)...)
		}
	}

	return errs
}

// Validate runs ValidateCatalog and joins the problems into one error.
func Validate(c *Catalog) error {
	return errors.Join(ValidateCatalog(c)...)
}

func validateCourseProgress(prefix string, entries []CourseProgressFixture, courses map[int]bool, lessonCourse map[int]int) []error {
	var errs []error
	enrolled := make(map[int]bool)
	for j, cp := range entries {
		ep := fmt.Sprintf("%s.courses[%d]", prefix, j)
		if !courses[cp.CourseID] {
			errs = append(errs, fmt.Errorf("%s.course_id: course %d not found", ep, cp.CourseID))
		}
		if enrolled[cp.CourseID] {
			errs = append(errs, fmt.Errorf("%s.course_id: duplicate entry for course %d", ep, cp.CourseID))
		}
		enrolled[cp.CourseID] = true
		for k, id := range cp.CompletedLessons {
			owner, ok := lessonCourse[id]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("%s.completed_lessons[%d]: lesson %d not found", ep, k, id))
			case owner != cp.CourseID:
				errs = append(errs, fmt.Errorf("%s.completed_lessons[%d]: lesson %d belongs to course %d", ep, k, id, owner))
			}
		}
		errs = append(errs, validateOptional(ep+".last_accessed", &cp.LastAccessed, timestampLayout)...)
	}
	return errs
}

// validateFields applies the struct tags and reports one error per failing
// field, addressed by its JSON path.
func validateFields(c *Catalog) []error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), "Catalog.")
		errs = append(errs, fmt.Errorf("%s: %s", path, describeTag(fe)))
	}
	return errs
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("invalid value %q (expected one of %s)", fmt.Sprint(fe.Value()), fe.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("must be %s %s", fe.Tag(), fe.Param())
	case "email", "url":
		return fmt.Sprintf("invalid %s %q", fe.Tag(), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("failed %q", fe.Tag())
}

func validateOptional(field string, s *string, layouts ...string) []error {
	if _, err := parseOptional(s, layouts...); err != nil {
		want := make([]string, 0, len(layouts))
		for _, layout := range layouts {
			if layout == timestampLayout {
				want = append(want, "RFC 3339")
			} else {
				want = append(want, "YYYY-MM-DD")
			}
		}
		return []error{fmt.Errorf("%s: invalid date format %q (expected %s)", field, *s, strings.Join(want, " or "))}
	}
	return nil
}
