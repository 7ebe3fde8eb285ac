// Package mimeutil provides miscellaneous utility functions shared by the
// mimetable libraries and command line tools.
//
package mimeutil
