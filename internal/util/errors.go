package util

import "errors"

var (
	ErrInvalidFileType  = errors.New("Please upload a CSV or JSON file")
	ErrInvalidImageType = errors.New("Please upload an image file (PNG, JPG, JPEG)")
	ErrNoValidTopics    = errors.New("No valid topics found in the file")
	ErrUploadInFlight   = errors.New("analysis already in progress")
	ErrNoScanScore      = errors.New("No score could be read from the sheet")
	ErrStudentNotFound  = errors.New("student not found")
	ErrUnknownSection   = errors.New("unknown section")
	ErrNoStudentChosen  = errors.New("select a student or upload a file first")
	ErrBackendDown      = errors.New("Could not reach the analysis backend. Showing demo data instead.")
)
