package canvas

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FetchAll gathers the caller's courses and, for each course, its
// assignments and enrollment grades. Course fetches run in parallel,
// bounded by MaxConcurrent. A failed per-course fetch degrades to an
// empty list and marks the course partial; only token and permission
// errors abort the whole run.
func (c *Client) FetchAll(ctx context.Context) (*SyncPayload, error) {
	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}

	payload := &SyncPayload{
		Courses: make([]CourseData, len(courses)),
	}
	if len(courses) == 0 {
		return payload, nil
	}

	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.maxConcurrent)

	for i, course := range courses {
		i, course := i, course
		group.Go(func() error {
			data := CourseData{Course: course}

			assignments, err := c.CourseAssignments(ctx, course.ID)
			if err != nil {
				if isFatal(err) {
					return err
				}
				data.Partial = true
			} else {
				data.Assignments = assignments
			}

			enrollments, err := c.CourseEnrollments(ctx, course.ID)
			if err != nil {
				if isFatal(err) {
					return err
				}
				data.Partial = true
			} else {
				data.Enrollments = enrollments
			}

			mu.Lock()
			payload.Courses[i] = data
			if data.Partial {
				payload.PartialFailures++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return payload, nil
}

// isFatal reports whether an error should abort the whole fetch rather
// than degrade one course.
func isFatal(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
