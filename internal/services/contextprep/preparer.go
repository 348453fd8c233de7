// Package contextprep bounds the code context sent upstream. Oversized
// context keeps its head (imports, declarations) and tail (most recently
// edited code) around a truncation marker.
package contextprep

import (
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/langdetect"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/utils"
)

const (
	// Marker replaces the middle of oversized context.
	Marker = "\n\n... [truncated] ...\n\n"

	minLength = 10
	maxLength = 8000
	headChars = 4000
	tailChars = 3000

	maxProjectFiles = 15
	maxCharsPerFile = 2000
	maxProjectChars = 8000
)

// Prepare bounds a single code context. Inputs shorter than 10 characters
// and inputs within the 8000-character limit pass through unchanged.
func Prepare(codeContext string) string {
	if len(codeContext) < minLength {
		return codeContext
	}
	if len(codeContext) <= maxLength {
		return codeContext
	}
	return codeContext[:headChars] + Marker + codeContext[len(codeContext)-tailChars:]
}

// BuildProjectContext assembles a combined context from project files,
// capped at 15 files, 2000 characters per file and 8000 characters total.
// Each block carries the filename and its extension-derived language label
// so the model can keep files apart.
func BuildProjectContext(files []models.ProjectFile) string {
	buf := utils.GetBuffer()
	defer utils.PutBuffer(buf)

	count := 0
	for _, f := range files {
		if f.Filename == "" {
			continue
		}
		if count >= maxProjectFiles || buf.Len() >= maxProjectChars {
			break
		}

		content := f.Content
		if len(content) > maxCharsPerFile {
			content = content[:maxCharsPerFile]
		}
		if remaining := maxProjectChars - buf.Len(); len(content) > remaining {
			content = content[:remaining]
		}

		if count > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString("File: ")
		buf.WriteString(f.Filename)
		buf.WriteString(" (Language: ")
		buf.WriteString(langdetect.FromFilename(f.Filename))
		buf.WriteString(")\n")
		buf.WriteString(content)
		count++
	}

	return buf.String()
}
