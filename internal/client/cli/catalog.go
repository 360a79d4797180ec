package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/services"
)

// Catalog lists all courses. No session is required to browse.
func (a *App) Catalog(ctx context.Context) error {
	courses, err := a.catalog.List(ctx)
	if err != nil {
		reportFailure(err)
		return err
	}

	if len(courses) == 0 {
		printlnFn("No courses in the catalog yet.")
		return nil
	}
	for _, c := range courses {
		printlnFn(fmt.Sprintf("[%d] %s", c.ID, c.Title))
		if c.Description != "" {
			printlnFn("    " + c.Description)
		}
	}
	return nil
}

// ShowCourse displays one course. Management affordances appear only when
// the current session grants them.
func (a *App) ShowCourse(ctx context.Context, courseID int64) error {
	detail, err := a.catalog.Get(ctx, courseID)
	if err != nil {
		reportFailure(err)
		return err
	}

	c := detail.Course
	printlnFn(c.Title)
	printlnFn(c.Description)
	printlnFn("Course content:")
	printlnFn(c.Content)
	printlnFn(fmt.Sprintf("Type 'enroll %d' to enroll in this course.", c.ID))
	if detail.CanManage {
		printlnFn("You are an administrator: 'addcourse' creates a new course.")
	}
	return nil
}

// Enroll requests enrollment in a course and prints the server's
// confirmation verbatim. Without a session it redirects to login instead of
// calling the network.
func (a *App) Enroll(ctx context.Context, courseID int64) error {
	msg, err := a.enrollment.Enroll(ctx, courseID)
	if errors.Is(err, api.ErrUnauthenticated) {
		a.redirectToLogin(ctx)
		return err
	}
	if errors.Is(err, services.ErrEnrollmentPending) {
		printlnFn("Enrollment for this course is already in progress.")
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	printlnFn(msg)
	return nil
}

// MyCourses lists the courses the current user is enrolled in.
func (a *App) MyCourses(ctx context.Context) error {
	courses, err := a.catalog.MyCourses(ctx)
	if errors.Is(err, api.ErrUnauthenticated) {
		a.redirectToLogin(ctx)
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	if len(courses) == 0 {
		printlnFn("You are not enrolled in any courses yet.")
		return nil
	}
	for _, c := range courses {
		printlnFn(fmt.Sprintf("[%d] %s", c.ID, c.Title))
	}
	return nil
}

// AddCourse creates a new course. The prompt sequence only starts for
// superusers; the workflow re-checks the role anyway.
func (a *App) AddCourse(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		reportFailure(err)
		return err
	}
	if user == nil {
		a.redirectToLogin(ctx)
		return api.ErrUnauthenticated
	}
	if !user.IsSuperuser {
		printlnFn("Only administrators can create courses.")
		return api.ErrForbidden
	}

	title, err := getSimpleText(a.reader, "Course title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Course content", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.catalog.Create(ctx, api.CreateCourseRequest{
		Title:       title,
		Description: description,
		Tags:        tags,
		Content:     content,
	})
	if err != nil {
		reportFailure(err)
		return err
	}

	printlnFn(msg)
	return nil
}
