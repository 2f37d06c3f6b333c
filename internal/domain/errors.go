package domain

import "errors"

var (
	ErrNoFilesUploaded  = errors.New("no files uploaded")
	ErrNotPDF           = errors.New("all files must be PDFs")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrCompletionFailed = errors.New("text completion provider call failed")
)
