package service

import (
	"path/filepath"
	"strings"
)

// fileTypeByExt maps extensions to coarse type buckets.
var fileTypeByExt = map[string]string{
	// images
	"jpg": "image", "jpeg": "image", "png": "image", "gif": "image",
	"bmp": "image", "svg": "image", "webp": "image",
	// documents
	"pdf": "document", "doc": "document", "docx": "document",
	"txt": "document", "rtf": "document",
	// spreadsheets
	"xls": "spreadsheet", "xlsx": "spreadsheet", "csv": "spreadsheet",
	// presentations
	"ppt": "presentation", "pptx": "presentation",
	// videos
	"mp4": "video", "avi": "video", "mov": "video", "wmv": "video",
	"flv": "video", "webm": "video",
	// audio
	"mp3": "audio", "wav": "audio", "flac": "audio", "aac": "audio", "ogg": "audio",
	// archives
	"zip": "archive", "rar": "archive", "7z": "archive", "tar": "archive", "gz": "archive",
	// code
	"js": "code", "ts": "code", "jsx": "code", "tsx": "code",
	"html": "code", "css": "code", "py": "code", "java": "code",
}

// GetFileType derives the type bucket from the file name. Unknown extensions
// map to the extension itself; a file without an extension maps to "unknown".
func GetFileType(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" {
		return "unknown"
	}

	if t, ok := fileTypeByExt[ext]; ok {
		return t
	}

	return ext
}

const (
	mib             = 1 << 20
	smallSizeLimit  = 1 * mib
	mediumSizeLimit = 10 * mib
)

// GetSizeCategory buckets a byte size into small, medium or large.
func GetSizeCategory(size int64) string {
	switch {
	case size < smallSizeLimit:
		return "small"
	case size < mediumSizeLimit:
		return "medium"
	default:
		return "large"
	}
}
