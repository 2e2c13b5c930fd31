// Package platform wraps the two filesystem operations a project creation
// performs: an exclusive directory create and a create-or-truncate text
// write. Errors are returned unmodified so callers can match them against
// fs.ErrExist and fs.ErrPermission.
package platform
