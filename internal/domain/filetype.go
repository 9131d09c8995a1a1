package domain

import "strings"

// FileType classifies an upload from the leading characters of its
// base64-encoded content.
type FileType int

const (
	FileTypeUnsupported FileType = iota
	FileTypeJPEG
	FileTypePDF
)

// Base64 of the JPEG magic number (ff d8 ff) and of "%PDF".
const (
	jpegBase64Prefix = "/9j/"
	pdfBase64Prefix  = "JVBER"
)

// DetectFileType classifies base64 content without decoding it. Anything that
// is not a JPEG or a PDF is Unsupported and must be rejected before any
// storage call.
func DetectFileType(content string) FileType {
	switch {
	case strings.HasPrefix(content, jpegBase64Prefix):
		return FileTypeJPEG
	case strings.HasPrefix(content, pdfBase64Prefix):
		return FileTypePDF
	default:
		return FileTypeUnsupported
	}
}

// Extension returns the upload extension for the type, or "" for Unsupported.
func (t FileType) Extension() string {
	switch t {
	case FileTypeJPEG:
		return "jpg"
	case FileTypePDF:
		return "pdf"
	default:
		return ""
	}
}

func (t FileType) String() string {
	switch t {
	case FileTypeJPEG:
		return "jpeg"
	case FileTypePDF:
		return "pdf"
	default:
		return "unsupported"
	}
}
