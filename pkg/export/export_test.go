package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{Headers: []string{"Subject", "Avg"}}
	data.AddRow("ENGLISH", "70")
	data.AddRow("PHYSICS, advanced", "85")

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), utf8BOM))
	body := strings.TrimPrefix(string(out), utf8BOM)
	assert.Equal(t, "Subject,Avg\nENGLISH,70\n\"PHYSICS, advanced\",85\n", body)
}

func TestExportersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{}, PDFOptions{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := Dataset{Headers: []string{"Name", "Grade"}}
	data.AddRow("Chala", "Grade 11")

	out, err := NewPDFExporter().Render(data, PDFOptions{Title: "Roster", Header: []string{"Oromia Education Bureau"}, Landscape: true})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
