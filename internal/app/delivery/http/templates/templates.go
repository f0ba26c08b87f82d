package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var captureEmail = template.Must(template.ParseFS(files, "capture_email.html"))

type CaptureEmailPage struct {
	ClientKey  string
	SubmitPath string
}

// RenderCaptureEmail executes the page into memory so a failure never leaves
// a half written response.
func RenderCaptureEmail(page CaptureEmailPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := captureEmail.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
