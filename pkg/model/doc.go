// Package model defines the database models for EaseBoard.
//
// This package contains GORM models that map to the EaseBoard PostgreSQL
// schema. Canvas data is cached per connection, so deleting a connection
// cascades through its courses, assignments and grades.
//
// # Core Models
//
//   - Profile: Application users, keyed by the Supabase user id
//   - CanvasConnection: A user's link to a Canvas instance, with the API
//     token stored encrypted
//   - Course: Cached Canvas course
//   - Assignment: Cached Canvas assignment with a derived lifecycle status
//   - Grade: Cached course-level grade snapshot
//   - SyncLog: One sync run against a connection
//   - StudySession: A logged study block
//   - Reminder: A user-set reminder, optionally tied to an assignment
//
// # Token Encryption
//
// CanvasConnection hooks encrypt the API token before save and decrypt it
// after find. The cipher travels on the gorm session context under
// db.CipherKey; operations that touch tokens fail with ErrNoCipher when it
// is absent.
package model
